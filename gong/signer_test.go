package gong

import "testing"

func TestSign_KnownVectors(t *testing.T) {
	signer := NewSigner("test-secret")

	tests := []struct {
		name      string
		method    string
		path      string
		timestamp string
		payload   string
		want      string
	}{
		{
			name:      "get with query payload",
			method:    "GET",
			path:      "/calls",
			timestamp: "2024-03-01T12:00:00Z",
			payload:   `{"fromDateTime":"2024-03-01T00:00:00Z"}`,
			want:      "F4afA/P0/L+Z1R5uvC8CEmBLMPpEM5Yt3ShCmA05Q7U=",
		},
		{
			name:      "post with body payload",
			method:    "POST",
			path:      "/calls/transcript",
			timestamp: "2024-03-01T12:00:00Z",
			payload:   `{"filter":{"callIds":["abc"],"includeEntities":true,"includeInteractionsSummary":true,"includeTrackers":true}}`,
			want:      "QYUAnf+vsjxElaF3e2sgBSgwNZmWiwWX4VnF5LYSoDg=",
		},
		{
			name:      "get without payload",
			method:    "GET",
			path:      "/calls",
			timestamp: "2024-03-01T12:00:00Z",
			payload:   "",
			want:      "MRsbthzIK3tfWOwqBUhaHthx6n9PZ5eB8KG35uTVq6Y=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signer.Sign(tt.method, tt.path, tt.timestamp, []byte(tt.payload))
			if got != tt.want {
				t.Errorf("Sign() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	signer := NewSigner("test-secret")

	first := signer.Sign("GET", "/calls", "2024-03-01T12:00:00Z", nil)
	second := signer.Sign("GET", "/calls", "2024-03-01T12:00:00Z", nil)

	if first != second {
		t.Errorf("identical inputs produced different signatures: %s vs %s", first, second)
	}
}

func TestSign_EachInputFieldAffectsSignature(t *testing.T) {
	signer := NewSigner("test-secret")
	base := signer.Sign("GET", "/calls", "2024-03-01T12:00:00Z", []byte(`{"a":"b"}`))

	variants := map[string]string{
		"method":    signer.Sign("POST", "/calls", "2024-03-01T12:00:00Z", []byte(`{"a":"b"}`)),
		"path":      signer.Sign("GET", "/calls/transcript", "2024-03-01T12:00:00Z", []byte(`{"a":"b"}`)),
		"timestamp": signer.Sign("GET", "/calls", "2024-03-01T12:00:01Z", []byte(`{"a":"b"}`)),
		"payload":   signer.Sign("GET", "/calls", "2024-03-01T12:00:00Z", []byte(`{"a":"c"}`)),
		"secret":    NewSigner("other-secret").Sign("GET", "/calls", "2024-03-01T12:00:00Z", []byte(`{"a":"b"}`)),
	}

	for field, got := range variants {
		if got == base {
			t.Errorf("changing %s did not change the signature", field)
		}
	}
}
