package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/mcncl/jsonv/internal/config"
	"github.com/mcncl/jsonv/internal/errors"
	"github.com/mcncl/jsonv/internal/lexer"
	"github.com/mcncl/jsonv/internal/parser"
	"github.com/mcncl/jsonv/internal/report"
)

// CLI defines the command-line interface
var CLI struct {
	Path    string `help:"Path to the JSON file to validate. If not specified, reads from stdin." arg:"" optional:"" type:"path"`
	Format  string `help:"Output format: text or json (default text)." short:"f"`
	Config  string `help:"Path to a config file. Defaults to .jsonv.yaml if present." short:"c" type:"path"`
	Quiet   bool   `help:"Suppress output on valid input; rely on the exit code." short:"q"`
	Debug   bool   `help:"Enable debug logging." short:"d"`
	Version bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

var log = logrus.New()

func main() {
	cliParser := kong.Must(&CLI,
		kong.Name("jsonv"),
		kong.Description("A tool to validate JSON documents"),
		kong.UsageOnError(),
	)

	_, err := cliParser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsonv version %s\n", Version)
		return
	}

	cfg, err := config.LoadWithCLI(CLI.Config, CLI.Format, CLI.Debug, CLI.Quiet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(errors.NewConfigError(err.Error(), err)))
		os.Exit(1)
	}

	log.SetOutput(os.Stderr)
	if cfg.Debug {
		log.SetLevel(logrus.DebugLevel)
	}

	result, err := run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}

	out, err := result.Render(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
	if !result.Valid {
		fmt.Println(out)
		os.Exit(1)
	}
	if !cfg.Quiet {
		fmt.Println(out)
	}
}

// run executes the validation pipeline: read input, tokenize, parse.
// Malformed JSON is reported through the Result; the error return is
// reserved for driver failures such as unreadable input.
func run(cfg *config.Config) (report.Result, error) {
	input, err := readInput()
	if err != nil {
		return report.Result{}, err
	}

	tokens, err := lexer.New(input).Tokenize()
	if err != nil {
		log.WithError(err).Debug("tokenization failed")
		return report.FromError(err), nil
	}
	log.WithField("tokens", len(tokens)).Debug("tokenized input")

	value, err := parser.New(tokens).Parse()
	if err != nil {
		log.WithError(err).Debug("parse failed")
		return report.FromError(err), nil
	}
	log.WithField("root", fmt.Sprintf("%T", value)).Debug("parsed document")

	return report.Success(), nil
}

// readInput reads the whole document from the file argument or stdin
func readInput() (string, error) {
	if CLI.Path != "" {
		data, err := os.ReadFile(CLI.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", CLI.Path), err)
			}
			return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", CLI.Path), err)
		}
		return string(data), nil
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal with nothing piped in.
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	return string(data), nil
}
