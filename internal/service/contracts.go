package service

import "github.com/aliskhannn/state-capitals-bot/internal/domain/entities"

// CapitalCatalog provides the capitals table and random draws from a pool.
type CapitalCatalog interface {
	AllEntries() []entities.CapitalEntry
	DrawRandomAndRemove(pool []entities.CapitalEntry) (entities.CapitalEntry, []entities.CapitalEntry, error)
}

// Rand is the subset of *rand.Rand used by the quiz services.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}
