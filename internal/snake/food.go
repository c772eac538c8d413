package snake

import (
	"math/rand"
)

// maxFoodSamples bounds rejection sampling before switching to an exhaustive
// scan of free cells. Long snakes on small grids hit the fallback.
const maxFoodSamples = 64

// FoodPlacer picks food cells that the snake does not occupy.
type FoodPlacer struct {
	rng *rand.Rand
}

// NewFoodPlacer creates a placer with a deterministic source for the seed.
func NewFoodPlacer(seed int64) *FoodPlacer {
	return &FoodPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Place returns a uniformly random free cell in [0,side)×[0,side).
// ok is false when the body covers every cell; the board is full and there is
// nowhere left to put food.
func (f *FoodPlacer) Place(body *Body, side int) (Position, bool) {
	if side <= 0 || body.Len() >= side*side {
		return Position{}, false
	}

	for i := 0; i < maxFoodSamples; i++ {
		p := Position{X: f.rng.Intn(side), Y: f.rng.Intn(side)}
		if !body.Occupies(p) {
			return p, true
		}
	}

	// Collect all empty cells
	free := make([]Position, 0, side*side-body.Len())
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			p := Position{X: x, Y: y}
			if !body.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Position{}, false
	}
	return free[f.rng.Intn(len(free))], true
}
