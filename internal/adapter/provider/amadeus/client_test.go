package amadeus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-result-engine/internal/domain"
	"github.com/flight-search/flight-result-engine/internal/infrastructure/retry"
)

// fakeAmadeus serves the token and flight offers endpoints.
type fakeAmadeus struct {
	tokenCalls  atomic.Int32
	searchCalls atomic.Int32

	// searchStatus returns the status for the n-th search call (1-based)
	searchStatus func(n int32) int

	lastQuery atomic.Value
	lastAuth  atomic.Value
}

func (f *fakeAmadeus) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc(tokenPath, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		n := f.tokenCalls.Add(1)

		if r.PostForm.Get("client_secret") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}

		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token_type":"Bearer","access_token":"token-` +
			string(rune('0'+n)) + `","expires_in":1799}`))
	})

	mux.HandleFunc(flightOffersPath, func(w http.ResponseWriter, r *http.Request) {
		n := f.searchCalls.Add(1)
		f.lastQuery.Store(r.URL.Query())
		f.lastAuth.Store(r.Header.Get("Authorization"))

		status := http.StatusOK
		if f.searchStatus != nil {
			status = f.searchStatus(n)
		}

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"errors":[{"status":` + strconv.Itoa(status) +
				`,"code":38189,"title":"Rejected","detail":"try later"}]}`))
			return
		}
		_, _ = w.Write([]byte(twoOfferResponse))
	})

	return mux
}

func newTestClient(t *testing.T, fake *fakeAmadeus, secret string) *Client {
	t.Helper()
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	return NewClient(Config{
		BaseURL:      server.URL,
		ClientID:     "id",
		ClientSecret: secret,
		Timeout:      time.Second,
		Location:     time.UTC,
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
	}, zerolog.Nop())
}

func testParams() domain.SearchParams {
	return domain.SearchParams{
		Origin:        "JFK",
		Destination:   "LAX",
		DepartureDate: "2025-12-15",
		Passengers:    2,
		TripType:      domain.TripOneWay,
	}
}

func TestClient_Name(t *testing.T) {
	c := NewClient(Config{}, zerolog.Nop())
	assert.Equal(t, "amadeus", c.Name())
}

func TestClient_Search_Success(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "secret")

	result, err := c.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Len(t, result.Flights, 2)
	assert.Equal(t, "UNITED AIRLINES", result.Carriers["UA"])

	q := fake.lastQuery.Load().(url.Values)
	assert.Equal(t, []string{"JFK"}, q["originLocationCode"])
	assert.Equal(t, []string{"LAX"}, q["destinationLocationCode"])
	assert.Equal(t, []string{"2025-12-15"}, q["departureDate"])
	assert.Equal(t, []string{"2"}, q["adults"])
	assert.Equal(t, []string{"50"}, q["max"])
	assert.Equal(t, []string{"USD"}, q["currencyCode"])
	assert.NotContains(t, q, "returnDate")
	assert.Equal(t, "Bearer token-1", fake.lastAuth.Load())
}

func TestClient_Search_RoundTripSendsReturnDate(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "secret")
	params := testParams()
	params.TripType = domain.TripRoundTrip
	params.ReturnDate = "2025-12-20"

	_, err := c.Search(context.Background(), params)

	require.NoError(t, err)
	q := fake.lastQuery.Load().(url.Values)
	assert.Equal(t, []string{"2025-12-20"}, q["returnDate"])
}

func TestClient_Search_ReusesToken(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "secret")

	for i := 0; i < 3; i++ {
		_, err := c.Search(context.Background(), testParams())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), fake.tokenCalls.Load())
	assert.Equal(t, int32(3), fake.searchCalls.Load())
}

func TestClient_Search_RefreshesTokenOn401(t *testing.T) {
	fake := &fakeAmadeus{
		searchStatus: func(n int32) int {
			if n == 1 {
				return http.StatusUnauthorized
			}
			return http.StatusOK
		},
	}
	c := newTestClient(t, fake, "secret")

	result, err := c.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Len(t, result.Flights, 2)
	assert.Equal(t, int32(2), fake.tokenCalls.Load())
	assert.Equal(t, "Bearer token-2", fake.lastAuth.Load())
}

func TestClient_Search_StatusMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantErr       error
		wantCalls     int32
		wantRetryable bool
	}{
		{
			name:      "persistent 401",
			status:    http.StatusUnauthorized,
			wantErr:   domain.ErrSourceUnauthorized,
			wantCalls: 2,
		},
		{
			name:      "403",
			status:    http.StatusForbidden,
			wantErr:   domain.ErrSourceUnauthorized,
			wantCalls: 1,
		},
		{
			name:      "429",
			status:    http.StatusTooManyRequests,
			wantErr:   domain.ErrRateLimited,
			wantCalls: 1,
		},
		{
			name:      "400",
			status:    http.StatusBadRequest,
			wantErr:   domain.ErrInvalidRequest,
			wantCalls: 1,
		},
		{
			name:          "500 is retried",
			status:        http.StatusInternalServerError,
			wantErr:       domain.ErrSourceUnavailable,
			wantCalls:     3,
			wantRetryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAmadeus{searchStatus: func(int32) int { return tt.status }}
			c := newTestClient(t, fake, "secret")

			_, err := c.Search(context.Background(), testParams())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCalls, fake.searchCalls.Load())
			assert.Equal(t, tt.wantRetryable, domain.IsRetryable(err))
			assert.False(t, retry.IsPermanent(err), "permanent wrapper is removed")

			var se *domain.SourceError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, "amadeus", se.Source)
		})
	}
}

func TestClient_Search_RecoversAfterServerError(t *testing.T) {
	fake := &fakeAmadeus{
		searchStatus: func(n int32) int {
			if n < 3 {
				return http.StatusBadGateway
			}
			return http.StatusOK
		},
	}
	c := newTestClient(t, fake, "secret")

	result, err := c.Search(context.Background(), testParams())

	require.NoError(t, err)
	assert.Len(t, result.Flights, 2)
	assert.Equal(t, int32(3), fake.searchCalls.Load())
}

func TestClient_Search_BadCredentials(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "wrong")

	_, err := c.Search(context.Background(), testParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceUnauthorized)
	assert.Equal(t, int32(0), fake.searchCalls.Load())
}

func TestClient_Search_ContextCancelled(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "secret")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Search(ctx, testParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Search_DeadlineBecomesTimeout(t *testing.T) {
	fake := &fakeAmadeus{}
	c := newTestClient(t, fake, "secret")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	_, err := c.Search(ctx, testParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceTimeout)
}

func TestClient_Search_RateLimitWaitPastDeadlineBecomesTimeout(t *testing.T) {
	fake := &fakeAmadeus{}
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	c := NewClient(Config{
		BaseURL:           server.URL,
		ClientID:          "id",
		ClientSecret:      "secret",
		Timeout:           time.Second,
		Location:          time.UTC,
		RequestsPerSecond: 0.01,
		Burst:             1,
		Retry:             retry.Config{MaxAttempts: 1},
	}, zerolog.Nop())

	_, err := c.Search(context.Background(), testParams())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Search(ctx, testParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSourceTimeout)
	assert.Equal(t, int32(1), fake.searchCalls.Load())
}

func TestClient_ImplementsInterface(t *testing.T) {
	var _ domain.FlightSource = (*Client)(nil)
	var _ domain.FlightSource = (*FileSource)(nil)
}
