package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// usageError reports a wrong number of command-line arguments.
type usageError struct{ cause error }

func (e usageError) Error() string {
	return "invalid number of arguments: " + e.cause.Error()
}

func newRootCmd(cfg Config, stdout io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kekehocc <integer>",
		Short: "Print x86-64 assembly for a main that returns the given value",
		Long: `kekehocc prints a GNU assembler translation unit whose main function
returns the integer given as the only argument. The argument is read the
way C's atoi reads it. With mode "expr" the argument is compiled as an
arithmetic expression instead.`,

		// Arguments such as "-5" are values, never flags.
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var buf bytes.Buffer
			if err := compile(cfg, args[0], &buf, cmd.ErrOrStderr()); err != nil {
				return err
			}
			// Nothing reaches stdout unless compilation succeeded.
			_, err := buf.WriteTo(stdout)
			return errors.Wrap(err, "write output")
		},
	}
	cmd.SetUsageTemplate("Usage:\n  {{.UseLine}}\n")
	return cmd
}

func compile(cfg Config, arg string, out, diag io.Writer) error {
	a, err := chooseArch(cfg.Syntax, out)
	if err != nil {
		return err
	}

	if cfg.Mode == modeLiteral {
		val := atoi(arg)
		if cfg.Strict {
			if val, err = parseStrict(arg); err != nil {
				return err
			}
		}
		return emitLiteral(a, cfg.Symbol, val)
	}

	// Tokenize and parse.
	tok, err := tokenize(arg)
	if err != nil {
		return err
	}
	if log.IsLevelEnabled(log.DebugLevel) {
		for t := tok; t != nil; t = t.next {
			log.WithFields(log.Fields{"kind": t.kind, "loc": t.loc}).Debugf("token %q", t.lexeme)
		}
	}

	node, err := parse(tok)
	if err != nil {
		return err
	}
	if cfg.DumpAST {
		if err := dumpAST(diag, node); err != nil {
			return errors.Wrap(err, "dump AST")
		}
	}

	// Traverse the AST to emit assembly.
	return codegen(a, cfg.Symbol, node)
}

func setupLogging(cfg Config, stderr io.Writer) {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      isTerminal(stderr),
	})
	// validate has already checked the level name.
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(getenv)
	if err != nil {
		report(stderr, errors.Wrap(err, "config"))
		return 1
	}
	setupLogging(cfg, stderr)
	log.WithFields(log.Fields{
		"mode":   cfg.Mode,
		"syntax": cfg.Syntax,
		"strict": cfg.Strict,
	}).Debug("configuration loaded")

	cmd := newRootCmd(cfg, stdout)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	// The root command has no subcommands, so it is run directly rather
	// than through Execute, whose command lookup would hand arguments such
	// as "__complete" to cobra's hidden shell-completion command.
	if err := cmd.ValidateArgs(args); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", cmd.Name(), err)
		fmt.Fprint(stderr, cmd.UsageString())
		return 1
	}
	if err := cmd.RunE(cmd, args); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}
