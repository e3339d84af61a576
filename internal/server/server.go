package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	gomcpserver "github.com/localrivet/gomcp/server"

	"github.com/polartrek/polarstepsmcp/internal/config"
	"github.com/polartrek/polarstepsmcp/internal/errortypes"
	"github.com/polartrek/polarstepsmcp/internal/normalize"
	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
	"github.com/polartrek/polarstepsmcp/internal/telemetry"
	"github.com/polartrek/polarstepsmcp/internal/tools"
)

// Response status values
const (
	statusSuccess = "success"
	statusError   = "error"
)

// MCPTravelToolServer implements the TravelToolServer interface for handling
// MCP tool calls against the Polarsteps API. Each invocation performs at most
// one outbound call sequence; errors are classified at this boundary so
// callers only ever see the fixed error taxonomy.
type MCPTravelToolServer struct {
	client    polarsteps.Client
	cfg       *config.Config
	metrics   *telemetry.MetricsCollector
	mcpServer gomcpserver.Server
}

// NewTravelToolServer creates a new MCPTravelToolServer instance.
func NewTravelToolServer(client polarsteps.Client, cfg *config.Config) *MCPTravelToolServer {
	return &MCPTravelToolServer{
		client:  client,
		cfg:     cfg,
		metrics: telemetry.NewMetricsCollector(),
	}
}

// Initialize initializes the server with dependencies and configurations.
func (s *MCPTravelToolServer) Initialize() error {
	slog.Info("Initializing Polarsteps MCP Tool Server")

	if s.client == nil || s.cfg == nil {
		return errortypes.ConfigError(errors.New("missing dependencies"), "server initialization failed")
	}

	// Create the MCP server
	srv := gomcpserver.NewServer("polarsteps-mcp")

	// Register lookup tools
	srv = srv.Tool(tools.ToolGetUser, "Get a Polarsteps user's profile by username",
		s.handleGetUser)

	srv = srv.Tool(tools.ToolGetUserStats, "Get a Polarsteps user's travel statistics",
		s.handleGetUserStats)

	srv = srv.Tool(tools.ToolGetUserTrips, "List a Polarsteps user's latest trips",
		s.handleGetUserTrips)

	srv = srv.Tool(tools.ToolGetUserSocialStatus, "Get a Polarsteps user's followers and following",
		s.handleGetUserSocialStatus)

	srv = srv.Tool(tools.ToolGetTrip, "Get detailed information about a Polarsteps trip by ID",
		s.handleGetTrip)

	srv = srv.Tool(tools.ToolSearchTrips, "Search for trips (not implemented yet)",
		s.handleSearchTrips)

	// Register informational resources
	srv = srv.Resource(ResourceConfig, "Effective server configuration with the credential masked",
		s.handleConfigResource)

	srv = srv.Resource(ResourceHelp, "Help documentation for the available tools",
		s.handleHelpResource)

	s.mcpServer = srv
	slog.Info("Polarsteps MCP Tool Server initialized successfully", "tool_count", 6, "resource_count", 2)
	return nil
}

// Start starts the MCP server on the stdio transport.
func (s *MCPTravelToolServer) Start() error {
	if s.mcpServer == nil {
		return errortypes.ConfigError(errors.New("server not initialized"), "cannot start server")
	}

	slog.Info("Starting Polarsteps MCP Tool Server")

	stdioServer := s.mcpServer.AsStdio()
	return stdioServer.Run()
}

// Stop gracefully shuts down the MCP server.
func (s *MCPTravelToolServer) Stop() error {
	slog.Info("Stopping Polarsteps MCP Tool Server")
	slog.Debug("Final metrics", "report", s.metrics.Report())
	// The server exits when stdin closes
	return nil
}

// handleGetUser handles the get_user MCP tool call.
func (s *MCPTravelToolServer) handleGetUser(ctx *gomcpserver.Context, req tools.GetUserRequest) (tools.GetUserResponse, error) {
	log := requestLogger(tools.ToolGetUser)
	log.Info("Processing get_user request", "username", req.Username)
	s.metrics.IncrementCounter(telemetry.MetricCallsGetUser)

	if err := requireUsername(req.Username); err != nil {
		return tools.GetUserResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	user, err := s.fetchUser(req.Username)
	if err != nil {
		return tools.GetUserResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	profile := normalize.UserProfile(user)
	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess)
	log.Info("Successfully fetched user", "username", profile.Username)
	return tools.GetUserResponse{Status: statusSuccess, User: &profile}, nil
}

// handleGetUserStats handles the get_user_stats MCP tool call.
func (s *MCPTravelToolServer) handleGetUserStats(ctx *gomcpserver.Context, req tools.GetUserStatsRequest) (tools.GetUserStatsResponse, error) {
	log := requestLogger(tools.ToolGetUserStats)
	log.Info("Processing get_user_stats request", "username", req.Username)
	s.metrics.IncrementCounter(telemetry.MetricCallsGetUserStats)

	if err := requireUsername(req.Username); err != nil {
		return tools.GetUserStatsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	user, err := s.fetchUser(req.Username)
	if err != nil {
		return tools.GetUserStatsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	// A user without a stats block still succeeds with zero-valued metrics.
	stats := normalize.UserStats(user)
	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess)
	return tools.GetUserStatsResponse{Status: statusSuccess, Stats: &stats}, nil
}

// handleGetUserTrips handles the get_user_trips MCP tool call.
func (s *MCPTravelToolServer) handleGetUserTrips(ctx *gomcpserver.Context, req tools.GetUserTripsRequest) (tools.GetUserTripsResponse, error) {
	log := requestLogger(tools.ToolGetUserTrips)
	log.Info("Processing get_user_trips request", "username", req.Username, "max_trips", req.MaxTrips)
	s.metrics.IncrementCounter(telemetry.MetricCallsGetUserTrips)

	if err := requireUsername(req.Username); err != nil {
		return tools.GetUserTripsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	maxTrips := req.MaxTrips
	if maxTrips == 0 {
		maxTrips = s.cfg.Tools.MaxTrips
		log.Debug("Using default trip cap for get_user_trips", "max_trips", maxTrips)
	}
	if maxTrips < 0 {
		err := errortypes.ValidationError(errors.New("max_trips must be a positive integer"), "invalid get_user_trips request")
		return tools.GetUserTripsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	user, err := s.fetchUser(req.Username)
	if err != nil {
		return tools.GetUserTripsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	// Trips stay in the order the API returned them; only a prefix-take
	// bounds the list.
	trips := normalize.TripSummaries(user.AllTrips, maxTrips)
	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess)
	log.Info("Successfully listed trips", "username", req.Username, "count", len(trips))
	return tools.GetUserTripsResponse{Status: statusSuccess, Trips: trips}, nil
}

// handleGetUserSocialStatus handles the get_user_social_status MCP tool call.
func (s *MCPTravelToolServer) handleGetUserSocialStatus(ctx *gomcpserver.Context, req tools.GetUserSocialStatusRequest) (tools.GetUserSocialStatusResponse, error) {
	log := requestLogger(tools.ToolGetUserSocialStatus)
	log.Info("Processing get_user_social_status request", "username", req.Username)
	s.metrics.IncrementCounter(telemetry.MetricCallsGetUserSocialStatus)

	if err := requireUsername(req.Username); err != nil {
		return tools.GetUserSocialStatusResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	user, err := s.fetchUser(req.Username)
	if err != nil {
		return tools.GetUserSocialStatusResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	social := normalize.SocialStatus(user)
	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess)
	return tools.GetUserSocialStatusResponse{Status: statusSuccess, Social: &social}, nil
}

// handleGetTrip handles the get_trip MCP tool call.
func (s *MCPTravelToolServer) handleGetTrip(ctx *gomcpserver.Context, req tools.GetTripRequest) (tools.GetTripResponse, error) {
	log := requestLogger(tools.ToolGetTrip)
	log.Info("Processing get_trip request", "trip_id", req.TripID)
	s.metrics.IncrementCounter(telemetry.MetricCallsGetTrip)

	if strings.TrimSpace(req.TripID) == "" {
		err := errortypes.ValidationError(errors.New("trip_id is required"), "invalid get_trip request")
		return tools.GetTripResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	start := time.Now()
	trip, err := s.client.TripByID(context.Background(), req.TripID)
	s.metrics.RecordTimer(telemetry.MetricUpstreamTripLatency, time.Since(start))
	if err != nil {
		appErr := classifyClientError(err, "failed to fetch trip").
			WithField("trip_id", req.TripID)
		return tools.GetTripResponse{Status: statusError, Error: s.fail(log, appErr)}, nil
	}

	detail := normalize.TripDetail(trip)
	s.metrics.IncrementCounter(telemetry.MetricCallsSuccess)
	log.Info("Successfully fetched trip", "trip_id", detail.ID, "steps", len(detail.Steps))
	return tools.GetTripResponse{Status: statusSuccess, Trip: &detail}, nil
}

// handleSearchTrips handles the search_trips MCP tool call. Search is a
// deliberate placeholder: the response is always the not_implemented kind
// and no upstream call is made.
func (s *MCPTravelToolServer) handleSearchTrips(ctx *gomcpserver.Context, req tools.SearchTripsRequest) (tools.SearchTripsResponse, error) {
	log := requestLogger(tools.ToolSearchTrips)
	log.Info("Processing search_trips request", "query", req.Query)
	s.metrics.IncrementCounter(telemetry.MetricCallsSearchTrips)

	if strings.TrimSpace(req.Query) == "" {
		err := errortypes.ValidationError(errors.New("query is required"), "invalid search_trips request")
		return tools.SearchTripsResponse{Status: statusError, Error: s.fail(log, err)}, nil
	}

	err := errortypes.NotImplementedError(
		errors.New("trip search is not implemented"),
		"Search for '"+req.Query+"' is not implemented. Use get_user_trips instead")
	return tools.SearchTripsResponse{Status: statusError, Error: s.fail(log, err)}, nil
}

// fetchUser performs the single upstream user lookup shared by the
// user-scoped tools and classifies any failure.
func (s *MCPTravelToolServer) fetchUser(username string) (*polarsteps.User, error) {
	start := time.Now()
	user, err := s.client.UserByUsername(context.Background(), username)
	s.metrics.RecordTimer(telemetry.MetricUpstreamUserLatency, time.Since(start))
	if err != nil {
		return nil, classifyClientError(err, "failed to fetch user").
			WithField("username", username)
	}
	return user, nil
}

// fail logs the error, counts it, and renders the envelope form.
func (s *MCPTravelToolServer) fail(log *slog.Logger, err error) *tools.ToolError {
	errortypes.LogError(log, err)
	s.metrics.IncrementCounter(telemetry.MetricCallsError)
	return toolError(err)
}

// requestLogger returns a logger scoped to a single tool invocation so log
// lines from concurrent calls can be correlated.
func requestLogger(tool string) *slog.Logger {
	return slog.With("tool", tool, "request_id", uuid.NewString())
}

// requireUsername rejects blank usernames before any external call.
func requireUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return errortypes.ValidationError(errors.New("username is required"), "invalid request")
	}
	return nil
}
