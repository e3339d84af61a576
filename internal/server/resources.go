package server

import (
	"encoding/json"

	gomcpserver "github.com/localrivet/gomcp/server"

	"github.com/polartrek/polarstepsmcp/internal/errortypes"
	"github.com/polartrek/polarstepsmcp/internal/util"
)

// Resource URIs served by the tool server.
const (
	// ResourceConfig is the URI of the effective-configuration document
	ResourceConfig = "polarsteps://config"

	// ResourceHelp is the URI of the static help document
	ResourceHelp = "polarsteps://help"
)

// configSummary is the JSON shape of the config resource. The raw credential
// never appears here; only its masked form and presence flag.
type configSummary struct {
	TokenSet    bool   `json:"token_set"`
	TokenMasked string `json:"token_masked,omitempty"`
	BaseURL     string `json:"base_url"`
	MaxTrips    int    `json:"max_trips"`
	LogLevel    string `json:"log_level"`
	LogFormat   string `json:"log_format"`
}

const helpText = `Polarsteps MCP Server

Tools:
  get_user(username)                     User profile: display name, location, trip and follower counts
  get_user_stats(username)               Travel statistics: distance, countries, trips, time traveled
  get_user_trips(username, max_trips)    Latest trips, newest first, at most max_trips (default 50)
  get_user_social_status(username)       Follower and following usernames, pending requests
  get_trip(trip_id)                      Full trip detail: summary, distance, steps, photos
  search_trips(query)                    Not implemented yet; use get_user_trips instead

Resources:
  polarsteps://config                    Effective configuration (credential masked)
  polarsteps://help                      This document

Setup:
  Set POLARSTEPS_REMEMBER_TOKEN to the remember_token cookie value from a
  logged-in polarsteps.com browser session. POLARSTEPS_BASE_URL optionally
  overrides the API endpoint.
`

// handleConfigResource serves the polarsteps://config resource.
func (s *MCPTravelToolServer) handleConfigResource(ctx *gomcpserver.Context, args *struct{}) (string, error) {
	summary := configSummary{
		TokenSet:    s.cfg.Polarsteps.RememberToken != "",
		TokenMasked: util.MaskSecret(s.cfg.Polarsteps.RememberToken),
		BaseURL:     s.cfg.EffectiveBaseURL(),
		MaxTrips:    s.cfg.Tools.MaxTrips,
		LogLevel:    s.cfg.Logging.Level,
		LogFormat:   s.cfg.Logging.Format,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", errortypes.InternalError(err, "failed to render config summary")
	}
	return string(data), nil
}

// handleHelpResource serves the polarsteps://help resource.
func (s *MCPTravelToolServer) handleHelpResource(ctx *gomcpserver.Context, args *struct{}) (string, error) {
	return helpText, nil
}
