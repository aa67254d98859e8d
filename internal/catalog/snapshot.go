package catalog

import (
	"encoding/json/v2"
	"fmt"
	"os"

	"github.com/heritageapp/heritage-server/internal/domain"
)

// Snapshot is the on-disk catalog format. Pinning a snapshot makes the
// synthesized portion reproducible across deployments; without one,
// every process start draws a fresh catalog.
type Snapshot struct {
	Version int                   `json:"version"`
	Entries []domain.CatalogEntry `json:"entries"`
}

// snapshotVersion guards against loading snapshots written by an
// incompatible entry schema.
const snapshotVersion = 1

// WriteSnapshot serializes a built catalog to path.
func WriteSnapshot(path string, entries []domain.CatalogEntry) error {
	data, err := json.Marshal(Snapshot{Version: snapshotVersion, Entries: entries})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a catalog snapshot from path.
func LoadSnapshot(path string) ([]domain.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d not supported (want %d)", snap.Version, snapshotVersion)
	}
	if len(snap.Entries) == 0 {
		return nil, fmt.Errorf("snapshot contains no entries")
	}
	return snap.Entries, nil
}
