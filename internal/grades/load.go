package grades

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

var ErrFetch = errors.New("fetch failed")

type Loader struct {
	logger     *slog.Logger
	httpClient http.Client
}

func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger: logger,
		httpClient: http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Load reads the dataset from a local path or an http(s) URL. There is no
// retry: any failure is returned to the caller as is.
func (l *Loader) Load(ctx context.Context, source string) (*Dataset, error) {
	start := time.Now()
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}
	l.logger.InfoContext(ctx, "grades loaded",
		"source", source,
		"records", len(records),
		"duration", time.Since(start))
	return NewDataset(records), nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		return f, nil
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Accept", "text/tab-separated-values, text/plain")

	response, err := l.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		response.Body.Close()
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, source, response.Status)
	}
	return response.Body, nil
}
