package table

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Snapshots persist a fetched dataset as zstd-compressed JSON so a previously
// loaded source can be reopened without network access. Files are keyed by a
// hash of the source string.

func snapshotPath(dir, source string) string {
	sum := sha256.Sum256([]byte(source))
	return filepath.Join(dir, hex.EncodeToString(sum[:8])+".tabmap.zst")
}

// SaveSnapshot writes the dataset under dir, creating dir if needed.
func SaveSnapshot(dir string, d *Dataset) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	f, err := os.Create(snapshotPath(dir, d.Source))
	if err != nil {
		return fmt.Errorf("snapshot create: %w", err)
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(zw).Encode(d); err != nil {
		zw.Close()
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return zw.Close()
}

// LoadSnapshot reads a previously saved dataset for source. A missing
// snapshot is reported via os.IsNotExist on the returned error.
func LoadSnapshot(dir, source string) (*Dataset, error) {
	f, err := os.Open(snapshotPath(dir, source))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	var d Dataset
	if err := json.NewDecoder(zr).Decode(&d); err != nil {
		return nil, fmt.Errorf("snapshot decode: %w", err)
	}
	return &d, nil
}
