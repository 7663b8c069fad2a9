package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	mcpproto "github.com/mark3labs/mcp-go/mcp"

	"github.com/wnoronha-3blmedia/gong-mcp/gong"
)

// Tool names exposed to the invoking agent.
const (
	toolListCalls           = "list_calls"
	toolRetrieveTranscripts = "retrieve_transcripts"
)

// listCallsTool declares the list_calls tool descriptor.
func listCallsTool() mcpproto.Tool {
	return mcpproto.NewTool(toolListCalls,
		mcpproto.WithDescription("List Gong calls with optional date range filtering. Returns call details including ID, title, start time, duration, and other metadata."),
		mcpproto.WithString("fromDateTime",
			mcpproto.Description("Start date/time in ISO format (e.g. 2024-03-01T00:00:00Z)")),
		mcpproto.WithString("toDateTime",
			mcpproto.Description("End date/time in ISO format (e.g. 2024-03-31T23:59:59Z)")),
	)
}

// retrieveTranscriptsTool declares the retrieve_transcripts tool descriptor.
func retrieveTranscriptsTool() mcpproto.Tool {
	return mcpproto.NewTool(toolRetrieveTranscripts,
		mcpproto.WithDescription("Retrieve transcripts for the given Gong call IDs. Returns speaker-attributed sentences with timing offsets, plus entities, interaction summaries, and trackers."),
		mcpproto.WithArray("callIds",
			mcpproto.Required(),
			mcpproto.Description("Gong call IDs to fetch transcripts for"),
			mcpproto.Items(map[string]any{"type": "string"})),
	)
}

// listCallsArgs are the typed, validated arguments of a list_calls invocation.
type listCallsArgs struct {
	FromDateTime string
	ToDateTime   string
}

// parseListCallsArgs shape-checks list_calls arguments. Both date bounds are
// optional, but when present they must be strings.
func parseListCallsArgs(args map[string]any) (listCallsArgs, error) {
	var parsed listCallsArgs

	for key, dst := range map[string]*string{
		"fromDateTime": &parsed.FromDateTime,
		"toDateTime":   &parsed.ToDateTime,
	} {
		raw, ok := args[key]
		if !ok || raw == nil {
			continue
		}
		value, ok := raw.(string)
		if !ok {
			return listCallsArgs{}, fmt.Errorf("invalid arguments for %s: %s must be a string", toolListCalls, key)
		}
		*dst = value
	}

	return parsed, nil
}

// parseTranscriptArgs shape-checks retrieve_transcripts arguments: callIds
// must be present and be an array whose every element is a string.
func parseTranscriptArgs(args map[string]any) ([]string, error) {
	raw, ok := args["callIds"]
	if !ok {
		return nil, fmt.Errorf("invalid arguments for %s: callIds is required", toolRetrieveTranscripts)
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("invalid arguments for %s: callIds must be an array of strings", toolRetrieveTranscripts)
	}

	callIDs := make([]string, 0, len(list))
	for _, item := range list {
		id, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("invalid arguments for %s: callIds must be an array of strings", toolRetrieveTranscripts)
		}
		callIDs = append(callIDs, id)
	}

	return callIDs, nil
}

// handleListCalls dispatches a list_calls invocation.
// Failures of any kind become failure results, never handler errors, so the
// transport always sees a well-formed reply.
func (s *Server) handleListCalls(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()
	if args == nil {
		return mcpproto.NewToolResultError("arguments are required"), nil
	}

	parsed, err := parseListCallsArgs(args)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	resp, err := s.client.ListCalls(ctx, gong.ListCallsParams{
		FromDateTime: parsed.FromDateTime,
		ToDateTime:   parsed.ToDateTime,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "list_calls failed", "error", err)
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	return textResult(resp.Raw)
}

// handleRetrieveTranscripts dispatches a retrieve_transcripts invocation.
func (s *Server) handleRetrieveTranscripts(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	args := req.GetArguments()
	if args == nil {
		return mcpproto.NewToolResultError("arguments are required"), nil
	}

	callIDs, err := parseTranscriptArgs(args)
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	resp, err := s.client.RetrieveTranscripts(ctx, callIDs)
	if err != nil {
		s.logger.WarnContext(ctx, "retrieve_transcripts failed", "error", err)
		return mcpproto.NewToolResultError(err.Error()), nil
	}

	return textResult(resp.Raw)
}

// textResult wraps an upstream JSON body as pretty-printed text in a success
// result. Key order of the upstream body is preserved.
func textResult(raw json.RawMessage) (*mcpproto.CallToolResult, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return mcpproto.NewToolResultError(fmt.Sprintf("gong: malformed response body: %v", err)), nil
	}
	return mcpproto.NewToolResultText(buf.String()), nil
}
