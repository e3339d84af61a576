// Package normalize maps Polarsteps API records onto the stable output shapes
// served by the tool layer. Missing optional upstream fields become documented
// defaults (empty strings, zero counts, empty slices), never errors. Trip
// lists are truncated by prefix-take in upstream order; nothing here re-sorts
// or deduplicates.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/polartrek/polarstepsmcp/internal/polarsteps"
	"github.com/polartrek/polarstepsmcp/internal/tools"
)

const unnamedTrip = "Unnamed Trip"

// UserProfile normalizes a user record for the get_user tool.
func UserProfile(u *polarsteps.User) tools.UserProfile {
	return tools.UserProfile{
		Username:       u.Username,
		DisplayName:    displayName(u),
		Location:       u.LivingLocationName,
		TripCount:      len(u.AllTrips),
		FollowerCount:  len(u.Followers),
		FollowingCount: len(u.Followees),
	}
}

// UserStats normalizes a user's travel metrics for the get_user_stats tool.
// A user without a stats block normalizes to zero-valued metrics.
func UserStats(u *polarsteps.User) tools.UserStats {
	if u.Stats == nil {
		return tools.UserStats{Continents: []string{}}
	}

	continents := u.Stats.Continents
	if continents == nil {
		continents = []string{}
	}

	return tools.UserStats{
		DistanceKm:          float64(u.Stats.KmCount),
		CountryCount:        u.Stats.CountryCount,
		TripCount:           u.Stats.TripCount,
		StepCount:           u.Stats.StepCount,
		TimeTraveledSeconds: u.Stats.TimeTraveledInSeconds,
		WorldPercentage:     u.Stats.WorldPercentage,
		Continents:          continents,
		FurthestPlace:       u.Stats.FurthestPlaceFromHome,
		FurthestPlaceKm:     u.Stats.FurthestPlaceFromHomeKm,
	}
}

// TripSummaries normalizes at most max trips, in the order the API returned
// them. max must be positive; the caller validates before reaching here.
func TripSummaries(trips []polarsteps.Trip, max int) []tools.TripSummary {
	if max > len(trips) {
		max = len(trips)
	}

	summaries := make([]tools.TripSummary, 0, max)
	for _, trip := range trips[:max] {
		summaries = append(summaries, tripSummary(trip))
	}
	return summaries
}

// TripDetail normalizes a full trip record for the get_trip tool.
func TripDetail(t *polarsteps.Trip) tools.TripDetail {
	steps := make([]tools.TripStep, 0, len(t.AllSteps))
	photos := []string{}
	for _, step := range t.AllSteps {
		if step.IsDeleted {
			continue
		}
		steps = append(steps, tools.TripStep{
			Name:        step.Name,
			Description: step.Description,
			Location:    stepLocation(step.Location),
			Time:        formatDate(step.StartTime),
		})
		for _, m := range step.Media {
			if ref := mediaRef(m); ref != "" {
				photos = append(photos, ref)
			}
		}
	}

	return tools.TripDetail{
		ID:         strconv.FormatInt(t.ID, 10),
		Name:       tripName(*t),
		Summary:    t.Summary,
		DistanceKm: t.TotalKm,
		StepCount:  t.StepCount,
		Views:      t.Views,
		StartDate:  formatDate(t.StartDate),
		EndDate:    formatDate(t.EndDate),
		Steps:      steps,
		Photos:     photos,
	}
}

// SocialStatus normalizes a user's social graph for the
// get_user_social_status tool.
func SocialStatus(u *polarsteps.User) tools.SocialStatus {
	return tools.SocialStatus{
		Username:                u.Username,
		Followers:               usernames(u.Followers),
		Following:               usernames(u.Followees),
		PendingIncomingRequests: len(u.FollowRequests),
		PendingOutgoingRequests: len(u.SentFollowRequests),
	}
}

func tripSummary(trip polarsteps.Trip) tools.TripSummary {
	return tools.TripSummary{
		ID:           strconv.FormatInt(trip.ID, 10),
		Name:         tripName(trip),
		StartDate:    formatDate(trip.StartDate),
		EndDate:      formatDate(trip.EndDate),
		DurationDays: durationDays(trip.StartDate, trip.EndDate),
		StepCount:    trip.StepCount,
		DistanceKm:   trip.TotalKm,
		Countries:    tripCountries(trip),
	}
}

func tripName(trip polarsteps.Trip) string {
	if trip.DisplayName != "" {
		return trip.DisplayName
	}
	if trip.Name != "" {
		return trip.Name
	}
	return unnamedTrip
}

func displayName(u *polarsteps.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// stepLocation renders a step location as "Name (CC)". Steps recorded
// without a location render as "Unknown".
func stepLocation(loc *polarsteps.Location) string {
	if loc == nil || loc.Name == "" {
		return "Unknown"
	}
	code := loc.CountryCode
	if code == "" {
		code = loc.Country
	}
	if code == "" {
		return loc.Name
	}
	return loc.Name + " (" + code + ")"
}

// tripCountries collects the distinct country names tagged on a trip's
// steps, in first-seen order.
func tripCountries(trip polarsteps.Trip) []string {
	var countries []string
	seen := make(map[string]bool)
	for _, step := range trip.AllSteps {
		if step.Location == nil || step.Location.Country == "" {
			continue
		}
		if !seen[step.Location.Country] {
			seen[step.Location.Country] = true
			countries = append(countries, step.Location.Country)
		}
	}
	return countries
}

func usernames(users []polarsteps.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.Username)
	}
	return names
}

func mediaRef(m polarsteps.Media) string {
	if m.LargeThumbnailPath != "" {
		return m.LargeThumbnailPath
	}
	return m.Path
}

// formatDate renders a unix-seconds timestamp as RFC 3339 in UTC. Absent
// timestamps (zero) render as the empty string.
func formatDate(unixSeconds float64) string {
	if unixSeconds <= 0 {
		return ""
	}
	return time.Unix(int64(unixSeconds), 0).UTC().Format(time.RFC3339)
}

func durationDays(start, end float64) int {
	if start <= 0 || end <= start {
		return 0
	}
	return int(time.Unix(int64(end), 0).Sub(time.Unix(int64(start), 0)).Hours() / 24)
}
