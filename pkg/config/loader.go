package config

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config-file parsers
type Parser interface {
	// Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*FileConfig, error)

	// CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

// 🗺️ parsers is the list of available parsers
var parsers []Parser

// Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// defaultFiles are probed, in order, when no config file is given explicitly.
var defaultFiles = []string{".renagex.hcl", ".renagex.yaml", ".renagex.yml"}

// Load loads file defaults from path.
func Load(ctx context.Context, path string) (*FileConfig, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading config file")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	fc, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	return fc, nil
}

// LoadDefault probes the default config-file names in the current directory.
// A missing file is not an error; an empty FileConfig is returned instead.
func LoadDefault(ctx context.Context) (*FileConfig, error) {
	for _, name := range defaultFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		return Load(ctx, name)
	}
	return &FileConfig{}, nil
}
