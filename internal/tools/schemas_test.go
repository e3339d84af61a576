package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestSuccessEnvelopeOmitsError verifies a success response serializes
// without an error member.
func TestSuccessEnvelopeOmitsError(t *testing.T) {
	response := GetUserResponse{
		Status: "success",
		User:   &UserProfile{Username: "alice", DisplayName: "Alice Walker"},
	}

	data, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Contains(string(data), `"error"`) {
		t.Errorf("Success envelope must not contain an error member: %s", data)
	}
	if !strings.Contains(string(data), `"status":"success"`) {
		t.Errorf("Missing status field: %s", data)
	}
}

// TestErrorEnvelopeShape verifies an error response carries kind and message
// and no payload.
func TestErrorEnvelopeShape(t *testing.T) {
	response := GetTripResponse{
		Status: "error",
		Error:  &ToolError{Kind: ErrorKindNotFound, Message: "Trip '42' was not found"},
	}

	data, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := decoded["trip"]; ok {
		t.Error("Error envelope must not contain a trip payload")
	}

	var toolErr ToolError
	if err := json.Unmarshal(decoded["error"], &toolErr); err != nil {
		t.Fatalf("Error member is not a ToolError: %v", err)
	}
	if toolErr.Kind != ErrorKindNotFound || toolErr.Message == "" {
		t.Errorf("Unexpected error member: %+v", toolErr)
	}
}
