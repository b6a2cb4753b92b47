package table

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Fetch loads a dataset from an http(s) URL or a local path. The parser is
// chosen by extension: .geojson/.json go through the GeoJSON flattener,
// everything else is read as CSV.
func Fetch(ctx context.Context, source string) (*Dataset, error) {
	var rc io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", source, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %s", source, resp.Status)
		}
		rc = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		rc = f
	}
	defer rc.Close()

	var (
		d   *Dataset
		err error
	)
	ext := strings.ToLower(filepath.Ext(strings.SplitN(source, "?", 2)[0]))
	switch ext {
	case ".geojson", ".json":
		d, err = ParseGeoJSON(rc)
	default:
		d, err = Parse(rc)
	}
	if err != nil {
		return nil, err
	}
	d.Source = source
	return d, nil
}
