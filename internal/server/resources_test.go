package server

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/polartrek/polarstepsmcp/internal/tools"
)

// TestConfigResourceMasksToken verifies the config resource never exposes
// the raw credential.
func TestConfigResourceMasksToken(t *testing.T) {
	server := newTestServer(t, &MockClient{})

	body, err := server.handleConfigResource(nil, nil)
	if err != nil {
		t.Fatalf("Resource handler returned error: %v", err)
	}

	if strings.Contains(body, "test-token-12345678") {
		t.Fatal("Config resource leaked the raw token")
	}

	var summary configSummary
	if err := json.Unmarshal([]byte(body), &summary); err != nil {
		t.Fatalf("Config resource is not valid JSON: %v", err)
	}
	if !summary.TokenSet {
		t.Error("Expected token_set true")
	}
	if !strings.HasSuffix(summary.TokenMasked, "5678") || !strings.Contains(summary.TokenMasked, "*") {
		t.Errorf("Unexpected masked token: %s", summary.TokenMasked)
	}
	if summary.BaseURL == "" {
		t.Error("Expected a default base URL")
	}
	if summary.MaxTrips != tools.DefaultMaxTrips {
		t.Errorf("Expected default max_trips %d, got %d", tools.DefaultMaxTrips, summary.MaxTrips)
	}
}

// TestHelpResourceListsTools verifies the help document names every tool.
func TestHelpResourceListsTools(t *testing.T) {
	server := newTestServer(t, &MockClient{})

	body, err := server.handleHelpResource(nil, nil)
	if err != nil {
		t.Fatalf("Resource handler returned error: %v", err)
	}

	names := []string{
		tools.ToolGetUser,
		tools.ToolGetUserStats,
		tools.ToolGetUserTrips,
		tools.ToolGetUserSocialStatus,
		tools.ToolGetTrip,
		tools.ToolSearchTrips,
	}
	for _, name := range names {
		if !strings.Contains(body, name) {
			t.Errorf("Help document does not mention tool '%s'", name)
		}
	}
	if !strings.Contains(body, ResourceConfig) {
		t.Errorf("Help document does not mention resource '%s'", ResourceConfig)
	}
}
