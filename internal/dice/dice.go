package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/fastbreak/internal/dice Roller

// Roller is the source of randomness for game simulation. Injecting
// it keeps simulated outcomes reproducible under a fixed seed.
type Roller interface {
	// Roll generates a roll between 1 and sides inclusive
	Roll(sides int) int

	// Intn returns a value in [0, n)
	Intn(n int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// Config for the default roller
type Config struct {
	// Optional seed for reproducible runs
	Seed int64
}

type defaultRoller struct {
	random *rand.Rand
}

// New creates a roller. A zero seed falls back to the wall clock.
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &defaultRoller{
		random: rand.New(source),
	}
}

// Roll generates a random roll with the specified number of sides
func (r *defaultRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}
	return r.random.Intn(sides) + 1
}

// Intn returns a value in [0, n)
func (r *defaultRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return r.random.Intn(n)
}

// Float64 returns a value in [0.0, 1.0)
func (r *defaultRoller) Float64() float64 {
	return r.random.Float64()
}
