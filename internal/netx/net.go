// Package netx contains small HTTP helpers that are not tied to the
// marketplace API schema.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Probe reports whether url answers HTTP at all. Any response, whatever its
// status, counts as reachable; only transport failures return an error.
func Probe(ctx context.Context, hc *http.Client, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("probe %s: %w", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
