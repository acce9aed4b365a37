package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/property-weather/internal/common"
	"github.com/i474232898/property-weather/internal/weather"
)

var (
	errServerError  = errors.New("server error")
	errNoHTTPClient = errors.New("http client not configured")
)

// DefaultBreakerFailures is the number of consecutive transport failures that
// opens the circuit.
const DefaultBreakerFailures = 5

func newCircuitBreaker(name string, failures uint32) *gobreaker.CircuitBreaker {
	if failures == 0 {
		failures = DefaultBreakerFailures
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
	})
}

// doRequest executes req once through the circuit breaker. Only transport
// failures and 5xx responses count against the breaker; the four HTTP
// statuses the provider documents are translated to weather errors here.
// The caller owns the returned body.
func doRequest(client *http.Client, cb *gobreaker.CircuitBreaker, req *http.Request) (*http.Response, error) {
	if client == nil {
		return nil, errNoHTTPClient
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, execErr := client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode >= 500 {
			drain(resp)
			return nil, fmt.Errorf("%w: status %d", errServerError, resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, weather.NewFetchError(weather.KindUnavailable, 0, err,
				"Weather API temporarily unavailable: %v", err)
		}
		return nil, transportError(err)
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return nil, fmt.Errorf("unexpected result type from circuit breaker")
	}

	if mapped := statusError(resp.StatusCode); mapped != nil {
		drain(resp)
		return nil, mapped
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		drain(resp)
		return nil, weather.NewFetchError(weather.KindTransport, resp.StatusCode, nil,
			"Network error: unexpected status code %d", resp.StatusCode)
	}
	return resp, nil
}

func statusError(status int) *weather.FetchError {
	switch status {
	case http.StatusUnauthorized:
		return weather.NewFetchError(weather.KindHTTPStatus, status, nil, "Invalid weather API key (HTTP 401)")
	case http.StatusTooManyRequests:
		return weather.NewFetchError(weather.KindHTTPStatus, status, nil, "Weather API rate limit exceeded")
	case http.StatusForbidden:
		return weather.NewFetchError(weather.KindHTTPStatus, status, nil, "Weather API plan does not support this feature")
	case http.StatusNotFound:
		return weather.NewFetchError(weather.KindHTTPStatus, status, nil, "Weather API endpoint not found")
	default:
		return nil
	}
}

func transportError(err error) *weather.FetchError {
	if isTimeout(err) {
		return weather.NewFetchError(weather.KindTimeout, 0, err, "Weather API request timed out")
	}
	return weather.NewFetchError(weather.KindTransport, 0, err, "Network error: %v", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return common.HasAny(err.Error(), "timeout", "deadline exceeded")
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
