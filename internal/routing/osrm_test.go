package routing_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/models"
	"github.com/swiftdispatch/emergency_dispatch_system/internal/routing"
)

func TestOSRMLookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "/route/v1/driving/")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":"Ok","routes":[{"distance":2500.0,"duration":492.0}]}`))
	}))
	defer srv.Close()

	lookup := routing.NewOSRMLookup(srv.URL, 5*time.Second)
	route, err := lookup.Route(context.Background(), origin, models.Coordinates{Lat: 48.8384, Lon: 2.3653})

	require.NoError(t, err)
	require.NotNil(t, route)
	assert.InDelta(t, 2.5, route.DistanceKm, 1e-9)
	// 492 секунды = 8.2 минуты, округление до ближайшей целой
	assert.Equal(t, 8, route.DurationMinutes)
}

func TestOSRMLookup_NoRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))
	defer srv.Close()

	lookup := routing.NewOSRMLookup(srv.URL, 5*time.Second)
	route, err := lookup.Route(context.Background(), origin, models.Coordinates{Lat: 0, Lon: 0})

	require.NoError(t, err)
	assert.Nil(t, route)
}

func TestOSRMLookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	lookup := routing.NewOSRMLookup(srv.URL, 5*time.Second)
	route, err := lookup.Route(context.Background(), origin, models.Coordinates{Lat: 48.8, Lon: 2.3})

	require.Error(t, err)
	assert.Nil(t, route)
	assert.ErrorContains(t, err, "returned status")
}

func TestOSRMLookup_UnknownCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"TooBig","routes":[]}`))
	}))
	defer srv.Close()

	lookup := routing.NewOSRMLookup(srv.URL, 5*time.Second)
	route, err := lookup.Route(context.Background(), origin, models.Coordinates{Lat: 48.8, Lon: 2.3})

	require.Error(t, err)
	assert.Nil(t, route)
}
