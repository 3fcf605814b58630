package directory

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
)

//go:embed data/places.json
var seedData embed.FS

// embeddedDirectory serves the bundled place directory. Entries are loaded
// once and never mutated; All hands out copies.
type embeddedDirectory struct {
	entries []domain.DirectoryEntry
}

// Load parses the bundled seed data.
func Load() (repository.DirectoryRepository, error) {
	raw, err := seedData.ReadFile("data/places.json")
	if err != nil {
		return nil, fmt.Errorf("read seed directory: %w", err)
	}

	var entries []domain.DirectoryEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed directory: %w", err)
	}

	return &embeddedDirectory{entries: entries}, nil
}

func (d *embeddedDirectory) All() []domain.DirectoryEntry {
	out := make([]domain.DirectoryEntry, len(d.entries))
	copy(out, d.entries)
	return out
}
