package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRandom(url string, timeout time.Duration) *RandomService {
	return &RandomService{url: url, client: &http.Client{Timeout: timeout}}
}

func TestDraw(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "0.57")
	}))
	defer srv.Close()

	value, err := newTestRandom(srv.URL, time.Second).Draw(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.57, value)
}

func TestDrawBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "invalid_response")
	}))
	defer srv.Close()

	_, err := newTestRandom(srv.URL, time.Second).Draw(context.Background())
	assert.ErrorIs(t, err, ErrRandomBadResponse)
	assert.Contains(t, err.Error(), "invalid_response")
}

func TestDrawTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		fmt.Fprintln(w, "0.42")
	}))
	defer srv.Close()

	_, err := newTestRandom(srv.URL, 20*time.Millisecond).Draw(context.Background())
	assert.ErrorIs(t, err, ErrRandomTimeout)
}

func TestDrawServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "over quota", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestRandom(srv.URL, time.Second).Draw(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRandomBadResponse)
	assert.Contains(t, err.Error(), "over quota")
}

func TestNewRandomServiceDefaults(t *testing.T) {
	t.Setenv("RANDOM_ORG_URL", "")
	t.Setenv("RANDOM_TIMEOUT_SECONDS", "")

	svc := NewRandomService()
	assert.Equal(t, defaultRandomURL, svc.url)
	assert.Equal(t, 5*time.Second, svc.client.Timeout)
}

func TestNewRandomServiceEnvOverrides(t *testing.T) {
	t.Setenv("RANDOM_ORG_URL", "http://localhost:9999/rand")
	t.Setenv("RANDOM_TIMEOUT_SECONDS", "2")

	svc := NewRandomService()
	assert.Equal(t, "http://localhost:9999/rand", svc.url)
	assert.Equal(t, 2*time.Second, svc.client.Timeout)
}
