package polarsteps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPolarstepsServer mocks the two API endpoints the client uses. It
// rejects any request without the expected remember_token cookie.
func mockPolarstepsServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("remember_token")
		if err != nil || cookie.Value != "test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/users/byusername/alice":
			json.NewEncoder(w).Encode(User{
				ID:       123,
				Username: "alice",
				FirstName: "Alice",
				LastName:  "Walker",
				AllTrips: []Trip{
					{ID: 1000001, Name: "Europe Adventure"},
					{ID: 1000002, Name: "Asia Journey"},
				},
			})
		case "/trips/1000001":
			json.NewEncoder(w).Encode(Trip{
				ID:      1000001,
				Name:    "Europe Adventure",
				Summary: "An amazing journey",
				TotalKm: 5000,
				AllSteps: []Step{
					{Name: "Paris", Location: &Location{Name: "Paris", CountryCode: "FR"}},
				},
			})
		case "/trips/boom":
			w.WriteHeader(http.StatusInternalServerError)
		case "/trips/garbled":
			w.Write([]byte("not json"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func newTestClient(t *testing.T, baseURL string) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(Options{RememberToken: "test-token", BaseURL: baseURL})
	require.NoError(t, err)
	return client
}

func TestNewHTTPClientRequiresToken(t *testing.T) {
	_, err := NewHTTPClient(Options{})
	assert.Error(t, err)
}

func TestUserByUsername(t *testing.T) {
	ts := mockPolarstepsServer(t)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	user, err := client.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Len(t, user.AllTrips, 2)
	assert.Equal(t, "Europe Adventure", user.AllTrips[0].Name)
}

func TestUserByUsernameNotFound(t *testing.T) {
	ts := mockPolarstepsServer(t)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	_, err := client.UserByUsername(context.Background(), "nobody")
	assert.True(t, errors.Is(err, ErrNotFound), "expected ErrNotFound, got %v", err)
}

func TestTripByID(t *testing.T) {
	ts := mockPolarstepsServer(t)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	trip, err := client.TripByID(context.Background(), "1000001")
	require.NoError(t, err)
	assert.Equal(t, int64(1000001), trip.ID)
	assert.Len(t, trip.AllSteps, 1)
	assert.Equal(t, "FR", trip.AllSteps[0].Location.CountryCode)
}

func TestRejectedToken(t *testing.T) {
	ts := mockPolarstepsServer(t)
	defer ts.Close()

	client, err := NewHTTPClient(Options{RememberToken: "wrong-token", BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.UserByUsername(context.Background(), "alice")
	assert.True(t, errors.Is(err, ErrUnauthorized), "expected ErrUnauthorized, got %v", err)
}

func TestUpstreamFailuresAreNotSentinel(t *testing.T) {
	ts := mockPolarstepsServer(t)
	defer ts.Close()

	client := newTestClient(t, ts.URL)

	tests := []struct {
		name   string
		tripID string
	}{
		{"server error", "boom"},
		{"malformed body", "garbled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.TripByID(context.Background(), tt.tripID)
			require.Error(t, err)
			assert.False(t, errors.Is(err, ErrNotFound))
			assert.False(t, errors.Is(err, ErrUnauthorized))
		})
	}
}
