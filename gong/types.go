package gong

import "encoding/json"

// Call is a single call record as returned by the Gong API. Fields are passed
// through verbatim; this client does not construct or validate them.
type Call struct {
	// ID is Gong's unique call identifier.
	ID string `json:"id"`

	// URL is the call's page in the Gong web application.
	URL string `json:"url,omitempty"`

	// Title is the call title.
	Title string `json:"title,omitempty"`

	// Scheduled is the scheduled date/time of the call, ISO-8601.
	Scheduled string `json:"scheduled,omitempty"`

	// Started is the actual start date/time of the call, ISO-8601.
	Started string `json:"started,omitempty"`

	// Duration is the call duration in seconds.
	Duration int `json:"duration,omitempty"`

	// Direction is the call direction (e.g. "Inbound", "Outbound").
	Direction string `json:"direction,omitempty"`

	// System is the system the call originated from.
	System string `json:"system,omitempty"`

	// Scope is the call scope (e.g. "Internal", "External").
	Scope string `json:"scope,omitempty"`

	// Media is the media type ("Audio" or "Video").
	Media string `json:"media,omitempty"`

	// Language is the detected call language code.
	Language string `json:"language,omitempty"`
}

// CallsResponse is the response body of the calls-listing endpoint.
type CallsResponse struct {
	// RequestID is Gong's identifier for this API request.
	RequestID string `json:"requestId,omitempty"`

	// Calls is the list of call records in the requested range.
	Calls []Call `json:"calls"`

	// Raw is the unmodified response body, retained so callers can relay the
	// upstream JSON without losing fields this client does not model.
	Raw json.RawMessage `json:"-"`
}

// Sentence is one transcribed sentence within a transcript monologue.
type Sentence struct {
	// Start is the sentence's offset from the start of the call, milliseconds.
	Start int `json:"start"`

	// Text is the transcribed sentence text.
	Text string `json:"text"`
}

// TranscriptEntry is one speaker monologue within a call transcript.
type TranscriptEntry struct {
	// SpeakerID identifies the speaker.
	SpeakerID string `json:"speakerId"`

	// Topic is the topic Gong assigned to this monologue, when any.
	Topic string `json:"topic,omitempty"`

	// Sentences is the ordered list of sentences spoken.
	Sentences []Sentence `json:"sentences"`
}

// CallTranscript is the transcript of a single call.
type CallTranscript struct {
	// CallID is the call this transcript belongs to.
	CallID string `json:"callId"`

	// Transcript is the ordered list of speaker monologues.
	Transcript []TranscriptEntry `json:"transcript"`
}

// TranscriptsResponse is the response body of the transcript-retrieval endpoint.
type TranscriptsResponse struct {
	// RequestID is Gong's identifier for this API request.
	RequestID string `json:"requestId,omitempty"`

	// CallTranscripts is the list of transcripts for the requested calls.
	CallTranscripts []CallTranscript `json:"callTranscripts"`

	// Raw is the unmodified response body, retained so callers can relay the
	// upstream JSON without losing fields this client does not model.
	Raw json.RawMessage `json:"-"`
}

// ListCallsParams are the optional date-range filters for ListCalls.
// Empty fields are omitted from the outbound request entirely.
type ListCallsParams struct {
	// FromDateTime is the inclusive range start, ISO-8601.
	FromDateTime string `json:"fromDateTime,omitempty"`

	// ToDateTime is the exclusive range end, ISO-8601.
	ToDateTime string `json:"toDateTime,omitempty"`
}

// isZero reports whether no filter is set.
func (p ListCallsParams) isZero() bool {
	return p.FromDateTime == "" && p.ToDateTime == ""
}

// transcriptFilter is the filter object of the transcript-retrieval request.
// The three include flags are always true; upstream returns entities,
// interaction summaries, and trackers alongside the raw transcript.
type transcriptFilter struct {
	CallIDs                    []string `json:"callIds"`
	IncludeEntities            bool     `json:"includeEntities"`
	IncludeInteractionsSummary bool     `json:"includeInteractionsSummary"`
	IncludeTrackers            bool     `json:"includeTrackers"`
}

// transcriptRequest is the request body of the transcript-retrieval endpoint.
type transcriptRequest struct {
	Filter transcriptFilter `json:"filter"`
}
