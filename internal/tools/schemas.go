// Package tools defines the tool names, request/response schemas, and output
// entity shapes for the Polarsteps MCP server.
package tools

const (
	// ToolGetUser is the name of the get_user MCP tool
	ToolGetUser = "get_user"

	// ToolGetUserStats is the name of the get_user_stats MCP tool
	ToolGetUserStats = "get_user_stats"

	// ToolGetUserTrips is the name of the get_user_trips MCP tool
	ToolGetUserTrips = "get_user_trips"

	// ToolGetUserSocialStatus is the name of the get_user_social_status MCP tool
	ToolGetUserSocialStatus = "get_user_social_status"

	// ToolGetTrip is the name of the get_trip MCP tool
	ToolGetTrip = "get_trip"

	// ToolSearchTrips is the name of the search_trips MCP tool
	ToolSearchTrips = "search_trips"

	// DefaultMaxTrips is the number of trips returned by get_user_trips
	// when the request does not specify max_trips
	DefaultMaxTrips = 50
)

// Error kinds placed in the ToolError envelope. Every error response carries
// exactly one of these together with a human-readable message.
const (
	ErrorKindValidation     = "validation_error"
	ErrorKindAuthentication = "authentication_error"
	ErrorKindNotFound       = "not_found"
	ErrorKindUpstream       = "upstream_error"
	ErrorKindNotImplemented = "not_implemented"
)

// ToolError is the structured error object included in error responses.
type ToolError struct {
	// Kind is one of the ErrorKind constants
	Kind string `json:"kind"`

	// Message is a human-readable description, never a stack trace
	Message string `json:"message"`
}

// UserProfile is the normalized user record returned by get_user.
type UserProfile struct {
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Location       string `json:"location"`
	TripCount      int    `json:"trip_count"`
	FollowerCount  int    `json:"follower_count"`
	FollowingCount int    `json:"following_count"`
}

// UserStats is the normalized travel-metrics record returned by get_user_stats.
type UserStats struct {
	DistanceKm          float64  `json:"distance_km"`
	CountryCount        int      `json:"country_count"`
	TripCount           int      `json:"trip_count"`
	StepCount           int      `json:"step_count"`
	TimeTraveledSeconds int64    `json:"time_traveled_seconds"`
	WorldPercentage     float64  `json:"world_percentage"`
	Continents          []string `json:"continents"`
	FurthestPlace       string   `json:"furthest_place"`
	FurthestPlaceKm     float64  `json:"furthest_place_km"`
}

// TripSummary is one entry in the get_user_trips listing.
type TripSummary struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	DurationDays int      `json:"duration_days"`
	StepCount    int      `json:"step_count"`
	DistanceKm   float64  `json:"distance_km"`
	Countries    []string `json:"countries,omitempty"`
}

// TripStep is one waypoint in a TripDetail.
type TripStep struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location"`
	Time        string `json:"time,omitempty"`
}

// TripDetail is the full trip record returned by get_trip.
type TripDetail struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Summary    string     `json:"summary"`
	DistanceKm float64    `json:"distance_km"`
	StepCount  int        `json:"step_count"`
	Views      int        `json:"views"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Steps      []TripStep `json:"steps"`
	Photos     []string   `json:"photos,omitempty"`
}

// SocialStatus is the follower/following record returned by get_user_social_status.
type SocialStatus struct {
	Username                string   `json:"username"`
	Followers               []string `json:"followers"`
	Following               []string `json:"following"`
	PendingIncomingRequests int      `json:"pending_incoming_requests"`
	PendingOutgoingRequests int      `json:"pending_outgoing_requests"`
}

// GetUserRequest defines the input schema for the get_user tool
type GetUserRequest struct {
	// Username is the user's Polarsteps username
	Username string `json:"username"`
}

// GetUserResponse defines the output schema for the get_user tool
type GetUserResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// User is the normalized profile when Status is "success"
	User *UserProfile `json:"user,omitempty"`

	// Error carries the kind and message when Status is "error"
	Error *ToolError `json:"error,omitempty"`
}

// GetUserStatsRequest defines the input schema for the get_user_stats tool
type GetUserStatsRequest struct {
	// Username is the user's Polarsteps username
	Username string `json:"username"`
}

// GetUserStatsResponse defines the output schema for the get_user_stats tool
type GetUserStatsResponse struct {
	Status string     `json:"status"`
	Stats  *UserStats `json:"stats,omitempty"`
	Error  *ToolError `json:"error,omitempty"`
}

// GetUserTripsRequest defines the input schema for the get_user_trips tool
type GetUserTripsRequest struct {
	// Username is the user's Polarsteps username
	Username string `json:"username"`

	// MaxTrips is the maximum number of trips to return.
	// If not specified, DefaultMaxTrips will be used.
	MaxTrips int `json:"max_trips,omitempty"`
}

// GetUserTripsResponse defines the output schema for the get_user_trips tool
type GetUserTripsResponse struct {
	Status string        `json:"status"`
	Trips  []TripSummary `json:"trips,omitempty"`
	Error  *ToolError    `json:"error,omitempty"`
}

// GetUserSocialStatusRequest defines the input schema for the get_user_social_status tool
type GetUserSocialStatusRequest struct {
	// Username is the user's Polarsteps username
	Username string `json:"username"`
}

// GetUserSocialStatusResponse defines the output schema for the get_user_social_status tool
type GetUserSocialStatusResponse struct {
	Status string        `json:"status"`
	Social *SocialStatus `json:"social,omitempty"`
	Error  *ToolError    `json:"error,omitempty"`
}

// GetTripRequest defines the input schema for the get_trip tool
type GetTripRequest struct {
	// TripID is the unique identifier of a trip in Polarsteps
	TripID string `json:"trip_id"`
}

// GetTripResponse defines the output schema for the get_trip tool
type GetTripResponse struct {
	Status string      `json:"status"`
	Trip   *TripDetail `json:"trip,omitempty"`
	Error  *ToolError  `json:"error,omitempty"`
}

// SearchTripsRequest defines the input schema for the search_trips tool
type SearchTripsRequest struct {
	// Query is the search query for trip names or descriptions
	Query string `json:"query"`
}

// SearchTripsResponse defines the output schema for the search_trips tool.
// The tool is a deliberate placeholder: it always returns the
// not_implemented error kind and never performs a lookup.
type SearchTripsResponse struct {
	Status string     `json:"status"`
	Error  *ToolError `json:"error,omitempty"`
}
