// Package jrand implements the jrand command, which prints draws from a seeded
// legacy generator.
package jrand

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/jinterop/internal/core/dice"
	platformcmd "github.com/louisbranch/jinterop/internal/platform/cmd"
	"github.com/louisbranch/jinterop/internal/platform/logging"
	"github.com/louisbranch/jinterop/internal/platform/otel"
	"github.com/louisbranch/jinterop/random"
)

// Draw operations accepted by -op.
const (
	OpInt    = "int"
	OpBits   = "bits"
	OpInt32  = "int32"
	OpLong   = "long"
	OpDouble = "double"
	OpFloat  = "float"
	OpBool   = "bool"
	OpBytes  = "bytes"
	OpDice   = "dice"
)

// ErrUnknownOp indicates -op named an operation jrand does not support.
var ErrUnknownOp = errors.New("unknown draw operation")

// ErrInvalidBits indicates -bits was outside [1, 32].
var ErrInvalidBits = errors.New("bits must be between 1 and 32")

// MaxCount caps -count, which sizes the output buffers.
const MaxCount = 1 << 20

// ErrInvalidCount indicates -count was not in [1, MaxCount].
var ErrInvalidCount = errors.New("count must be between 1 and 1048576")

// Config holds jrand command configuration.
type Config struct {
	Seed       uint64 `env:"RAND_SEED"`
	RandomSeed bool   `env:"RAND_RANDOM_SEED"`
	Op         string `env:"RAND_OP"    envDefault:"int"`
	Bound      uint64 `env:"RAND_BOUND" envDefault:"4096"`
	Bits       uint   `env:"RAND_BITS"  envDefault:"32"`
	Count      int    `env:"RAND_COUNT" envDefault:"1"`
	Dice       string `env:"RAND_DICE"  envDefault:"2d6"`
	Logging    logging.Config
}

// ParseConfig loads env defaults and then parses flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.Var(seedFlag{&cfg.Seed}, "seed", "generator seed, signed or unsigned 64-bit")
	fs.BoolVar(&cfg.RandomSeed, "random-seed", cfg.RandomSeed, "seed from crypto/rand and log the seed")
	fs.StringVar(&cfg.Op, "op", cfg.Op, "draw: int, bits, int32, long, double, float, bool, bytes, dice")
	fs.Uint64Var(&cfg.Bound, "bound", cfg.Bound, "exclusive upper bound for -op int")
	fs.UintVar(&cfg.Bits, "bits", cfg.Bits, "bit count for -op bits")
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of draws (bytes for -op bytes)")
	fs.StringVar(&cfg.Dice, "dice", cfg.Dice, "dice notation for -op dice, e.g. 2d6,1d8")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run draws cfg.Count values and writes one per line to out.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	logger, err := logging.New(errOut, cfg.Logging)
	if err != nil {
		return err
	}
	op := strings.ToLower(strings.TrimSpace(cfg.Op))
	if cfg.Count <= 0 || cfg.Count > MaxCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, cfg.Count)
	}

	seed := cfg.Seed
	if cfg.RandomSeed {
		seed, err = random.NewSeed()
		if err != nil {
			return err
		}
		logger.Info().Uint64("seed", seed).Int64("signed_seed", int64(seed)).Msg("using random seed")
	}

	_, span := otel.Tracer().Start(ctx, "jrand.run")
	defer span.End()
	span.SetAttributes(
		attribute.String("jrand.op", op),
		attribute.Int("jrand.count", cfg.Count),
	)

	rng := random.New(seed)
	lines, err := draw(rng, op, cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}
	logger.Debug().Str("op", op).Int("lines", len(lines)).Uint64("state", rng.State()).Msg("drew")

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

func draw(rng *random.Random, op string, cfg Config) ([]string, error) {
	switch op {
	case OpBytes:
		b := make([]byte, cfg.Count)
		rng.NextBytes(b)
		return []string{hex.EncodeToString(b)}, nil
	case OpDice:
		return rollDice(rng, cfg)
	}

	next, err := drawFunc(rng, op, cfg)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, cfg.Count)
	for range cfg.Count {
		line, err := next()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func drawFunc(rng *random.Random, op string, cfg Config) (func() (string, error), error) {
	switch op {
	case OpInt:
		if cfg.Bound > math.MaxUint32 {
			return nil, fmt.Errorf("%w: got %d", random.ErrInvalidBound, cfg.Bound)
		}
		bound := uint32(cfg.Bound)
		return func() (string, error) {
			v, err := rng.NextInt(bound)
			if err != nil {
				return "", err
			}
			return strconv.FormatUint(uint64(v), 10), nil
		}, nil
	case OpBits:
		if cfg.Bits < 1 || cfg.Bits > 32 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidBits, cfg.Bits)
		}
		bits := uint32(cfg.Bits)
		return func() (string, error) {
			return strconv.FormatUint(uint64(rng.NextBits(bits)), 10), nil
		}, nil
	case OpInt32:
		return func() (string, error) {
			return strconv.FormatInt(int64(rng.NextInt32()), 10), nil
		}, nil
	case OpLong:
		return func() (string, error) {
			return strconv.FormatInt(rng.NextLong(), 10), nil
		}, nil
	case OpDouble:
		return func() (string, error) {
			return strconv.FormatFloat(rng.NextDouble(), 'g', -1, 64), nil
		}, nil
	case OpFloat:
		return func() (string, error) {
			return strconv.FormatFloat(float64(rng.NextFloat()), 'g', -1, 32), nil
		}, nil
	case OpBool:
		return func() (string, error) {
			return strconv.FormatBool(rng.NextBoolean()), nil
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

func rollDice(rng *random.Random, cfg Config) ([]string, error) {
	specs, err := dice.ParseSpecs(cfg.Dice)
	if err != nil {
		return nil, err
	}

	var lines []string
	for range cfg.Count {
		result, err := dice.RollWithRandom(rng, specs)
		if err != nil {
			return nil, err
		}
		for i, roll := range result.Rolls {
			faces := make([]string, len(roll.Results))
			for j, v := range roll.Results {
				faces[j] = strconv.Itoa(v)
			}
			lines = append(lines, fmt.Sprintf("%s: %s = %d", specs[i], strings.Join(faces, " "), roll.Total))
		}
		lines = append(lines, fmt.Sprintf("total: %d", result.Total))
	}
	return lines, nil
}

// seedFlag accepts seeds in either the signed or the unsigned 64-bit range,
// since callers often carry seeds as signed values.
type seedFlag struct {
	v *uint64
}

func (f seedFlag) String() string {
	if f.v == nil {
		return "0"
	}
	return strconv.FormatUint(*f.v, 10)
}

func (f seedFlag) Set(s string) error {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		*f.v = uint64(n)
		return nil
	}
	u, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return fmt.Errorf("parse seed %q: %w", s, err)
	}
	*f.v = u
	return nil
}
