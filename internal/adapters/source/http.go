// Package source implements ports.TaskSource for external task feeds.
package source

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.trai.ch/pace/internal/core/domain"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// HTTPSource fetches task records from a JSON endpoint. The endpoint is
// expected to return an array of loosely-typed task records; an empty array
// is a successful fetch.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates an HTTPSource for the given endpoint.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		url: url,
		client: &http.Client{
			Timeout: httpClientTimeout,
		},
	}
}

// newHTTPSourceWithClient creates an HTTPSource with a custom client (used for testing).
func newHTTPSourceWithClient(url string, client *http.Client) *HTTPSource {
	return &HTTPSource{url: url, client: client}
}

// Fetch retrieves and decodes the record sequence.
func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.TaskRecord, error) {
	ctx, span := otel.Tracer("pace").Start(ctx, "source.http.fetch")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, http.NoBody)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		reqErr := zerr.With(domain.ErrSourceRequestFailed, "status_code", resp.StatusCode)
		return nil, zerr.With(reqErr, "url", s.url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceRequestFailed.Error())
	}

	var records []domain.TaskRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceParseFailed.Error())
	}

	return records, nil
}
