package itinerary

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"tripview.kansaitrip.org/internal/report"
)

// Backoff parameters for the remote trip source. Variables rather than
// constants so tests can shrink the delays.
var (
	baseBackoff   = 1 * time.Second
	maxBackoff    = 2 * time.Minute
	jitterFactor  = 0.5
	backoffFactor = 2.0
)

// ValidateFlags ensures exactly one trip source is specified: either a
// local file (--trip-file) or a remote URL (--trip-url).
func ValidateFlags(tripFile, tripURL *string) error {
	if *tripFile == "" && *tripURL == "" {
		return fmt.Errorf("no trip provided, either --trip-file or --trip-url must be specified")
	}
	if (*tripFile != "" && *tripURL != "") || len(flag.Args()) > 0 {
		return fmt.Errorf("only one of --trip-file or --trip-url can be specified")
	}
	return nil
}

// LoadFromFile reads and validates a trip JSON file from disk.
func LoadFromFile(filePath string) (*Trip, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		err = fmt.Errorf("failed to read trip file: %w", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"file_path": filePath},
			Level: sentry.LevelError,
		})
		return nil, err
	}
	return parseTrip(data)
}

// LoadFromURL fetches and validates a trip JSON document from a remote
// HTTP(S) endpoint, with optional basic auth and jittered retries.
func LoadFromURL(ctx context.Context, client *http.Client, url, authUser, authPass string, maxRetries int) (*Trip, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if authUser != "" && authPass != "" {
		req.SetBasicAuth(authUser, authPass)
	}

	resp, err := doWithBackoff(ctx, client, req, maxRetries)
	if err != nil {
		err = fmt.Errorf("failed to fetch trip: %w", err)
		report.ReportErrorWithSentryOptions(err, report.SentryReportOptions{
			Tags:  map[string]string{"trip_url": url},
			Level: sentry.LevelError,
		})
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		statusErr := fmt.Errorf("trip source returned status: %d", resp.StatusCode)
		report.ReportErrorWithSentryOptions(statusErr, report.SentryReportOptions{
			Tags:  map[string]string{"trip_url": url},
			Level: sentry.LevelError,
		})
		return nil, statusErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read trip response: %w", err)
	}
	return parseTrip(data)
}

func parseTrip(data []byte) (*Trip, error) {
	var trip Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trip JSON: %w", err)
	}
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("invalid trip: %w", err)
	}
	return &trip, nil
}

// doWithBackoff performs the request, retrying transport failures and 5xx
// responses with jittered exponential delays up to maxRetries attempts.
func doWithBackoff(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	var lastErr error
	delay := baseBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			sleep := delay + time.Duration(rand.Float64()*float64(delay)*jitterFactor)
			if sleep > maxBackoff {
				sleep = maxBackoff
			}
			select {
			case <-time.After(sleep):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			delay = time.Duration(float64(delay) * backoffFactor)
			if delay > maxBackoff {
				delay = maxBackoff
			}
		}

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server returned status: %d", resp.StatusCode)
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			continue
		}
		return resp, nil
	}
	return nil, fmt.Errorf("request failed after %d attempts: %w", maxRetries, lastErr)
}
