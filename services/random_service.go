package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultRandomURL = "https://www.random.org/decimal-fractions/?num=1&min=0&max=1&col=1&format=plain&rnd=new"

// RandomService fetches uniformly distributed numbers from random.org's
// plain-text decimal-fraction endpoint. It keeps no state between calls.
type RandomService struct {
	url    string
	client *http.Client
}

// NewRandomService configures the client from the environment:
// RANDOM_ORG_URL overrides the endpoint, RANDOM_TIMEOUT_SECONDS bounds each
// request (default 5).
func NewRandomService() *RandomService {
	url := os.Getenv("RANDOM_ORG_URL")
	if url == "" {
		url = defaultRandomURL
	}

	timeout := 5 * time.Second
	if v := os.Getenv("RANDOM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	return &RandomService{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Draw fetches one fresh number in [0,1). Every call is an independent
// network round trip; timeouts and unparseable bodies are terminal, there is
// no retry and no caching.
func (s *RandomService) Draw(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, fmt.Errorf("%w", ErrRandomTimeout)
		}
		return 0, fmt.Errorf("failed to call random.org: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read random.org response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("random.org error %d: %s", resp.StatusCode, string(body))
	}

	text := strings.TrimSpace(string(body))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrRandomBadResponse, text)
	}
	return value, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
