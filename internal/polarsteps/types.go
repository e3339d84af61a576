package polarsteps

// Record types mirroring the JSON shapes returned by the Polarsteps API.
// Optional fields decode to their zero values; the normalize package maps
// those onto documented defaults.

// User is a Polarsteps user record, including the embedded trip list and
// social graph returned by the by-username endpoint.
type User struct {
	ID            int64   `json:"id"`
	UUID          string  `json:"uuid"`
	Username      string  `json:"username"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Description   string  `json:"description"`
	LivingLocationName string `json:"living_location_name"`
	CountryCount  int     `json:"country_count"`
	CreationDate  float64 `json:"creation_date"`

	Stats *Stats `json:"stats,omitempty"`

	AllTrips           []Trip `json:"alltrips"`
	Followers          []User `json:"followers"`
	Followees          []User `json:"followees"`
	FollowRequests     []User `json:"follow_requests"`
	SentFollowRequests []User `json:"sent_follow_requests"`
}

// Stats holds the aggregated travel metrics Polarsteps computes per user.
type Stats struct {
	KmCount                int64    `json:"km_count"`
	CountryCount           int      `json:"country_count"`
	TripCount              int      `json:"trip_count"`
	StepCount              int      `json:"step_count"`
	TimeTraveledInSeconds  int64    `json:"time_traveled_in_seconds"`
	WorldPercentage        float64  `json:"world_percentage"`
	Continents             []string `json:"continents"`
	CountryCodes           []string `json:"country_codes"`
	LikeCount              int      `json:"like_count"`
	FurthestPlaceFromHome  string   `json:"furthest_place_from_home_location"`
	FurthestPlaceFromHomeKm float64 `json:"furthest_place_from_home_km"`
	LastTripEndDate        float64  `json:"last_trip_end_date"`
}

// Trip is a Polarsteps trip record. The by-username endpoint embeds trips
// without steps; the trip endpoint includes the full step sequence.
type Trip struct {
	ID          int64   `json:"id"`
	UUID        string  `json:"uuid"`
	UserID      int64   `json:"user_id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Summary     string  `json:"summary"`
	TotalKm     float64 `json:"total_km"`
	StepCount   int     `json:"step_count"`
	Views       int     `json:"views"`
	StartDate   float64 `json:"start_date"`
	EndDate     float64 `json:"end_date"`
	TimezoneID  string  `json:"timezone_id"`

	AllSteps []Step `json:"all_steps"`
}

// Step is a single waypoint within a trip.
type Step struct {
	ID          int64     `json:"id"`
	UUID        string    `json:"uuid"`
	TripID      int64     `json:"trip_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartTime   float64   `json:"start_time"`
	IsDeleted   bool      `json:"is_deleted"`
	Location    *Location `json:"location,omitempty"`
	Media       []Media   `json:"media"`
}

// Location is the place a step was recorded at.
type Location struct {
	Name        string  `json:"name"`
	Detail      string  `json:"detail"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// Media is a photo or video attached to a step.
type Media struct {
	ID                 int64  `json:"id"`
	Path               string `json:"path"`
	LargeThumbnailPath string `json:"large_thumbnail_path"`
}
