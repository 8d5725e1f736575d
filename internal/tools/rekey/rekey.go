// Package rekey implements the keycase command: it rewrites JSON document keys between snake_case and camelCase.
package rekey

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viant/keycase"
	"github.com/viant/keycase/encoding/json"
	"github.com/viant/keycase/format/text"
	"github.com/viant/keycase/internal/platform/config"
	"goa.design/clue/log"
)

const (
	// DirectionCamel rewrites snake_case keys to camelCase
	DirectionCamel = "camel"
	// DirectionSnake rewrites camelCase keys to snake_case
	DirectionSnake = "snake"
)

// Config holds configuration for key rewriting.
type Config struct {
	Direction string `env:"KEYCASE_DIRECTION" envDefault:"camel"`
	Words     bool   `env:"KEYCASE_WORDS"`
	Input     string `env:"KEYCASE_INPUT"`
	Output    string `env:"KEYCASE_OUTPUT"`
	Debug     bool   `env:"KEYCASE_DEBUG"`
}

// Validate checks config values
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Direction, validation.Required, validation.In(DirectionCamel, DirectionSnake)),
	)
}

// Transformer returns key transformer for config direction
func (c Config) Transformer() *keycase.Transformer {
	switch {
	case c.Direction == DirectionSnake && c.Words:
		return keycase.New(keycase.WordCase(text.CaseFormatLowerCamel, text.CaseFormatLowerUnderscore))
	case c.Direction == DirectionSnake:
		return keycase.New(text.CamelToSnake)
	case c.Words:
		return keycase.New(keycase.WordCase(text.CaseFormatLowerUnderscore, text.CaseFormatLowerCamel))
	default:
		return keycase.New(text.SnakeToCamel)
	}
}

// ParseConfig loads environment defaults and parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Direction, "direction", cfg.Direction, "key case direction: camel or snake")
	fs.BoolVar(&cfg.Words, "words", cfg.Words, "split words on case boundaries (userID <-> user_id)")
	fs.StringVar(&cfg.Input, "in", cfg.Input, "input JSON file (default: stdin)")
	fs.StringVar(&cfg.Output, "out", cfg.Output, "output JSON file (default: stdout)")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logs")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Execute opens configured input and output, falling back to stdin and stdout, and runs the rewrite.
func Execute(ctx context.Context, cfg Config, stdin io.Reader, stdout io.Writer) error {
	in, out := stdin, stdout
	if cfg.Input != "" {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		in = file
	}
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		if err := Run(ctx, cfg, in, file); err != nil {
			_ = file.Close()
			return err
		}
		return file.Close()
	}
	return Run(ctx, cfg, in, out)
}

// Run reads a JSON document from in, rewrites its keys and writes the result to out.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	if in == nil {
		return errors.New("input is required")
	}
	if out == nil {
		return errors.New("output is required")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	log.Debug(ctx, log.KV{K: "msg", V: "read input"}, log.KV{K: "bytes", V: len(data)})

	result, err := json.Transcode(data, cfg.Transformer().Transform)
	if err != nil {
		log.Error(ctx, err, log.KV{K: "msg", V: "rewrite keys"}, log.KV{K: "direction", V: cfg.Direction})
		return fmt.Errorf("rewrite keys: %w", err)
	}
	if _, err = fmt.Fprintf(out, "%s\n", result); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Debug(ctx, log.KV{K: "msg", V: "wrote output"}, log.KV{K: "bytes", V: len(result)}, log.KV{K: "direction", V: cfg.Direction}, log.KV{K: "words", V: cfg.Words})
	return nil
}

// LogContext returns a context carrying a text logger writing to w
func LogContext(ctx context.Context, cfg Config, w io.Writer) context.Context {
	opts := []log.LogOption{log.WithOutput(w), log.WithFormat(log.FormatText)}
	if cfg.Debug {
		opts = append(opts, log.WithDebug())
	}
	return log.Context(ctx, opts...)
}
