package main

import (
	"os"
	"slices"
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	modeLiteral = "literal" // Return the argument as an integer constant
	modeExpr    = "expr"    // Compile the argument as an expression
)

// Config controls what kekehocc compiles and how it is printed.
// The zero value is not valid; use defaultConfig.
type Config struct {
	Mode     string `yaml:"mode"`
	Syntax   string `yaml:"syntax"`
	Symbol   string `yaml:"symbol"`
	Strict   bool   `yaml:"strict"`
	LogLevel string `yaml:"log_level"`
	DumpAST  bool   `yaml:"dump_ast"`
}

func defaultConfig() Config {
	return Config{
		Mode:     modeLiteral,
		Syntax:   "intel",
		Symbol:   "main",
		LogLevel: "warn",
	}
}

// Loads the configuration from the file named by KEKEHOCC_CONFIG, if any,
// then applies the KEKEHOCC_* environment overrides.
func loadConfig(getenv func(string) string) (Config, error) {
	cfg := defaultConfig()

	if path := getenv("KEKEHOCC_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if v := getenv("KEKEHOCC_MODE"); v != "" {
		cfg.Mode = v
	}
	if v := getenv("KEKEHOCC_SYNTAX"); v != "" {
		cfg.Syntax = v
	}
	if v := getenv("KEKEHOCC_SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := getenv("KEKEHOCC_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	for _, o := range []struct {
		name string
		dst  *bool
	}{
		{"KEKEHOCC_STRICT", &cfg.Strict},
		{"KEKEHOCC_DUMP_AST", &cfg.DumpAST},
	} {
		v := getenv(o.name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, errors.Wrapf(err, "%s", o.name)
		}
		*o.dst = b
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Mode {
	case modeLiteral, modeExpr:
	default:
		return errors.Errorf("unknown mode %q", c.Mode)
	}

	if !slices.Contains(syntaxes, c.Syntax) {
		return errors.Errorf("unsupported syntax: %s (want one of %v)", c.Syntax, syntaxes)
	}

	if c.Symbol == "" {
		return errors.New("symbol must not be empty")
	}
	for i := 0; i < len(c.Symbol); i++ {
		if !isIdent2(c.Symbol[i]) || (i == 0 && isDigit(c.Symbol[i])) {
			return errors.Errorf("invalid symbol name %q", c.Symbol)
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
