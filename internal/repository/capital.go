package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
)

// CatalogSize is the number of entries the capitals table must hold.
const CatalogSize = 50

var (
	ErrEmptyPool      = errors.New("capital pool is empty")
	ErrInvalidCatalog = errors.New("invalid capitals catalog")
)

//go:embed assets/capitals.json
var embeddedCapitals []byte

// Rand is the subset of *rand.Rand used for drawing entries.
type Rand interface {
	Intn(n int) int
}

// CapitalRepository provides access to the 50 U.S. states and their capitals.
// The table is loaded once and never handed out directly.
type CapitalRepository struct {
	entries []entities.CapitalEntry
	rng     Rand
}

// NewCapitalRepository loads the capitals table. An empty path selects the
// embedded table. A nil rng uses a time-seeded source.
func NewCapitalRepository(path string, rng Rand) (*CapitalRepository, error) {
	data := embeddedCapitals
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read capitals file: %w", err)
		}
	}

	entries, err := loadCapitals(data)
	if err != nil {
		return nil, err
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &CapitalRepository{
		entries: entries,
		rng:     rng,
	}, nil
}

// AllEntries returns a fresh copy of the full table.
func (r *CapitalRepository) AllEntries() []entities.CapitalEntry {
	return slices.Clone(r.entries)
}

// DrawRandomAndRemove picks a uniformly random entry from pool, removes it
// and every duplicate of it, and returns the entry with the shrunken pool.
func (r *CapitalRepository) DrawRandomAndRemove(
	pool []entities.CapitalEntry,
) (entities.CapitalEntry, []entities.CapitalEntry, error) {
	if len(pool) == 0 {
		return entities.CapitalEntry{}, pool, ErrEmptyPool
	}

	drawn := pool[r.rng.Intn(len(pool))]
	return drawn, Remove(pool, drawn), nil
}

// Remove deletes every element of pool equal to entry (case-insensitive)
// and returns the shortened slice. It is a no-op when entry is absent.
func Remove(pool []entities.CapitalEntry, entry entities.CapitalEntry) []entities.CapitalEntry {
	return slices.DeleteFunc(pool, entry.Equal)
}

func loadCapitals(data []byte) ([]entities.CapitalEntry, error) {
	var wrapper struct {
		Capitals []entities.CapitalEntry `json:"capitals"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal capitals JSON: %w", err)
	}

	if len(wrapper.Capitals) != CatalogSize {
		return nil, fmt.Errorf("%w: expected %d entries, got %d",
			ErrInvalidCatalog, CatalogSize, len(wrapper.Capitals))
	}

	for i, e := range wrapper.Capitals {
		if e.State == "" || e.Capital == "" {
			return nil, fmt.Errorf("%w: entry %d is incomplete", ErrInvalidCatalog, i)
		}
		if slices.ContainsFunc(wrapper.Capitals[:i], e.Equal) {
			return nil, fmt.Errorf("%w: duplicate entry %s", ErrInvalidCatalog, e)
		}
	}

	return wrapper.Capitals, nil
}
