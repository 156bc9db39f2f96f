package service

import (
	"math/rand"
	"sync"
	"time"

	"github.com/aliskhannn/flag-quiz-bot/internal/domain/entities"
)

// RoundGenerator builds quiz rounds from a country table.
type RoundGenerator struct {
	mu    sync.Mutex
	rng   *rand.Rand
	codes []entities.CountryCode
}

// NewRoundGenerator creates a generator over the table's codes.
// A nil rng is replaced by one seeded from the clock.
func NewRoundGenerator(table *entities.CountryTable, rng *rand.Rand) (*RoundGenerator, error) {
	if table == nil || table.Len() < entities.MinCountries {
		return nil, entities.ErrNotEnoughCountries
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &RoundGenerator{
		rng:   rng,
		codes: table.Codes(),
	}, nil
}

// Generate picks a target and three distinct distractors and returns them
// in a random display order.
func (g *RoundGenerator) Generate() entities.Round {
	g.mu.Lock()
	defer g.mu.Unlock()

	picks := g.sample(entities.OptionsPerRound)
	target := picks[0]

	var options [entities.OptionsPerRound]entities.CountryCode
	copy(options[:], picks)
	g.shuffle(options[:])

	return entities.NewRound(target, options)
}

// sample draws k distinct codes with a partial Fisher-Yates pass.
// Each draw is uniform over the codes not drawn yet.
func (g *RoundGenerator) sample(k int) []entities.CountryCode {
	pool := make([]entities.CountryCode, len(g.codes))
	copy(pool, g.codes)

	for i := 0; i < k; i++ {
		j := i + g.rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}

// shuffle permutes codes in place; every ordering is equally likely.
func (g *RoundGenerator) shuffle(codes []entities.CountryCode) {
	for i := len(codes) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		codes[i], codes[j] = codes[j], codes[i]
	}
}
