// Package jhash implements the jhash command, which prints legacy hash codes
// for values given on the command line or on stdin.
package jhash

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/jinterop/hashcode"
	"github.com/louisbranch/jinterop/internal/jsonvalue"
	platformcmd "github.com/louisbranch/jinterop/internal/platform/cmd"
	"github.com/louisbranch/jinterop/internal/platform/logging"
	"github.com/louisbranch/jinterop/internal/platform/otel"
)

// Value kinds accepted by -kind.
const (
	KindString    = "string"
	KindUTF16     = "utf16"
	KindBytes     = "bytes"
	KindByte      = "byte"
	KindShort     = "short"
	KindInt       = "int"
	KindLong      = "long"
	KindChar      = "char"
	KindFloat     = "float"
	KindDouble    = "double"
	KindBool      = "bool"
	KindJSON      = "json"
	KindJSONUTF16 = "json-utf16"
)

// ErrUnknownKind indicates -kind named a kind jhash does not support.
var ErrUnknownKind = errors.New("unknown value kind")

// ErrInvalidValue indicates an input could not be parsed as the selected kind.
var ErrInvalidValue = errors.New("invalid value")

// Config holds jhash command configuration.
type Config struct {
	Kind      string `env:"HASH_KIND" envDefault:"string"`
	ShowInput bool   `env:"HASH_SHOW_INPUT"`
	Logging   logging.Config
	Values    []string
}

// ParseConfig loads env defaults and then parses flags and positional values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "value kind: string, utf16, bytes, byte, short, int, long, char, float, double, bool, json, json-utf16")
	fs.BoolVar(&cfg.ShowInput, "show-input", cfg.ShowInput, "print each input next to its hash")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.Values = fs.Args()
	return cfg, nil
}

// Run hashes every configured value, or every stdin line when no values were
// given, and writes one hash per line to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	logger, err := logging.New(errOut, cfg.Logging)
	if err != nil {
		return err
	}
	kind := strings.ToLower(strings.TrimSpace(cfg.Kind))
	if _, err := HashValue(kind, ""); errors.Is(err, ErrUnknownKind) {
		return fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
	}

	_, span := otel.Tracer().Start(ctx, "jhash.run")
	defer span.End()
	span.SetAttributes(attribute.String("jhash.kind", kind))

	values := cfg.Values
	if len(values) == 0 && in != nil {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for scanner.Scan() {
			values = append(values, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}
	span.SetAttributes(attribute.Int("jhash.values", len(values)))

	for _, v := range values {
		h, err := HashValue(kind, v)
		if err != nil {
			return err
		}
		logger.Debug().Str("kind", kind).Str("value", v).Int32("hash", h).Msg("hashed")
		if cfg.ShowInput {
			_, err = fmt.Fprintf(out, "%d\t%s\n", h, v)
		} else {
			_, err = fmt.Fprintf(out, "%d\n", h)
		}
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

// HashValue parses raw as kind and returns its hash code. Integer kinds accept
// either the signed or the unsigned range of their width, in any base
// strconv.ParseInt understands.
func HashValue(kind, raw string) (int32, error) {
	switch kind {
	case KindString:
		return hashcode.String(raw).HashCode(), nil
	case KindUTF16:
		return hashcode.UTF16(raw).HashCode(), nil
	case KindBytes:
		return hashcode.Bytes(raw).HashCode(), nil
	case KindByte:
		return integer(raw, 8)
	case KindShort:
		return integer(raw, 16)
	case KindInt:
		return integer(raw, 32)
	case KindLong:
		return integer(raw, 64)
	case KindChar:
		r, size := utf8.DecodeRuneInString(raw)
		if size == 0 || size != len(raw) || (r == utf8.RuneError && size == 1) {
			return 0, fmt.Errorf("%w: %q is not a single character", ErrInvalidValue, raw)
		}
		return hashcode.Rune(r).HashCode(), nil
	case KindFloat:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, raw, err)
		}
		return hashcode.Float32(f).HashCode(), nil
	case KindDouble:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, raw, err)
		}
		return hashcode.Float64(f).HashCode(), nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, raw, err)
		}
		return hashcode.Bool(b).HashCode(), nil
	case KindJSON, KindJSONUTF16:
		h, err := jsonvalue.Hash(raw, jsonvalue.Options{UTF16: kind == KindJSONUTF16})
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return h, nil
	}
	return 0, ErrUnknownKind
}

func integer(raw string, bits int) (int32, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 0, bits); err == nil {
		switch bits {
		case 8:
			return hashcode.Int8(n).HashCode(), nil
		case 16:
			return hashcode.Int16(n).HashCode(), nil
		case 32:
			return hashcode.Int32(n).HashCode(), nil
		}
		return hashcode.Int64(n).HashCode(), nil
	}
	u, err := strconv.ParseUint(raw, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a %d-bit integer", ErrInvalidValue, raw, bits)
	}
	switch bits {
	case 8:
		return hashcode.Uint8(u).HashCode(), nil
	case 16:
		return hashcode.Uint16(u).HashCode(), nil
	case 32:
		return hashcode.Uint32(u).HashCode(), nil
	}
	return hashcode.Uint64(u).HashCode(), nil
}
