// Package dice rolls dice from a seeded legacy generator, so a seed yields the
// same rolls as the managed runtime's generator would.
package dice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/jinterop/random"
)

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// MaxCount caps how many times a single spec may roll its die.
const MaxCount = 1000

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// String renders the spec in NdS notation.
func (s Spec) String() string {
	return fmt.Sprintf("%dd%d", s.Count, s.Sides)
}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed uint64
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []Roll
	Total int
}

// RollDice rolls dice based on the provided request.
//
// # Determinism
//
// RollDice is deterministic with respect to the Seed field on Request.
// Given the same Seed and the same Dice slice (including order and values),
// RollDice will always produce the same Result. Each die is one bounded draw
// of random.New(Seed).
//
// # Ordering
//
// Dice specs in Request.Dice are processed in slice order. The resulting
// Roll entries in Result.Rolls appear in the same order as the
// corresponding Spec entries in Request.Dice.
//
// # Errors
//
//   - At least one Spec must be provided in Request.Dice, otherwise
//     ErrMissingDice is returned.
//   - Each Spec must have Sides in [1, random.MaxBound] and Count in
//     [1, MaxCount], otherwise ErrInvalidDiceSpec is returned.
func RollDice(request Request) (Result, error) {
	return RollWithRandom(random.New(request.Seed), request.Dice)
}

// RollWithRandom rolls dice using a caller-owned generator, continuing its
// sequence.
func RollWithRandom(rng *random.Random, specs []Spec) (Result, error) {
	if len(specs) == 0 {
		return Result{}, ErrMissingDice
	}

	rolls := make([]Roll, 0, len(specs))
	total := 0

	for _, spec := range specs {
		if spec.Sides <= 0 || spec.Count <= 0 || spec.Count > MaxCount || uint64(spec.Sides) > uint64(random.MaxBound) {
			return Result{}, ErrInvalidDiceSpec
		}

		results := make([]int, spec.Count)
		rollTotal := 0
		for i := 0; i < spec.Count; i++ {
			value, err := rollDie(rng, spec.Sides)
			if err != nil {
				return Result{}, err
			}
			results[i] = value
			rollTotal += value
		}

		rolls = append(rolls, Roll{
			Sides:   spec.Sides,
			Results: results,
			Total:   rollTotal,
		})
		total += rollTotal
	}

	return Result{
		Rolls: rolls,
		Total: total,
	}, nil
}

// ParseSpecs parses comma-separated NdS notation such as "2d6,1d8". A missing
// count means one die.
func ParseSpecs(notation string) ([]Spec, error) {
	var specs []Spec
	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		count, sides, ok := strings.Cut(strings.ToLower(part), "d")
		if !ok {
			return nil, fmt.Errorf("parse %q: %w", part, ErrInvalidDiceSpec)
		}
		n := 1
		if count != "" {
			v, err := strconv.Atoi(count)
			if err != nil {
				return nil, fmt.Errorf("parse %q count: %w", part, ErrInvalidDiceSpec)
			}
			n = v
		}
		s, err := strconv.Atoi(sides)
		if err != nil {
			return nil, fmt.Errorf("parse %q sides: %w", part, ErrInvalidDiceSpec)
		}
		if n <= 0 || s <= 0 || n > MaxCount || uint64(s) > uint64(random.MaxBound) {
			return nil, fmt.Errorf("parse %q: %w", part, ErrInvalidDiceSpec)
		}
		specs = append(specs, Spec{Sides: s, Count: n})
	}
	if len(specs) == 0 {
		return nil, ErrMissingDice
	}
	return specs, nil
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(rng *random.Random, sides int) (int, error) {
	v, err := rng.NextInt(uint32(sides))
	if err != nil {
		return 0, err
	}
	return int(v) + 1, nil
}
