// Copyright 2024-2026 Aiku AI

// Command chatmarkup renders WhatsApp-style chat markup messages in the
// formats the Matrix-Mattermost bridge uses. Each file named on the command
// line, or stdin when none are given, is read as one message.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	flag "maunium.net/go/mauflag"

	"github.com/aiku/chatmarkup/pkg/connector"
)

// These are filled at build time with -ldflags.
var (
	Tag       = "unknown"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var configPath = flag.MakeFull("c", "config", "The path to the YAML config file.", "").String()
var outputFormat = flag.MakeFull("f", "format", "Output format: matrix, html, mattermost, text or json. Overrides the config.", "").String()
var version = flag.MakeFull("v", "version", "View version and quit.", "false").Bool()
var wantHelp, _ = flag.MakeHelpFlag()

func main() {
	flag.SetHelpTitles(
		"chatmarkup - render WhatsApp-style chat markup.",
		"chatmarkup [-hv] [-c <path>] [-f <format>] [file...]",
	)
	if err := flag.Parse(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		flag.PrintHelp()
		os.Exit(1)
	} else if *wantHelp {
		flag.PrintHelp()
		os.Exit(0)
	} else if *version {
		fmt.Printf("chatmarkup %s (commit %s, built %s)\n", Tag, Commit, BuildTime)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *outputFormat != "" {
		if !isKnownFormat(*outputFormat) {
			_, _ = fmt.Fprintf(os.Stderr, "unknown output format %q\n", *outputFormat)
			os.Exit(2)
		}
		cfg.Format = *outputFormat
	}
	log, err := cfg.logger(os.Stderr)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := run(cfg, log, flag.Args(), os.Stdin, os.Stdout); err != nil {
		log.Error().Err(err).Msg("Failed to render messages")
		os.Exit(1)
	}
}

// run renders every input to stdout, separating messages with a blank line.
func run(cfg *Config, log zerolog.Logger, files []string, stdin io.Reader, stdout io.Writer) error {
	cv, err := connector.NewConverter(cfg.Markup, log)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return renderTo(stdout, cv, log, "stdin", string(data), cfg.Format)
	}

	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if i > 0 {
			if _, err := fmt.Fprintln(stdout); err != nil {
				return err
			}
		}
		if err := renderTo(stdout, cv, log, path, string(data), cfg.Format); err != nil {
			return err
		}
	}
	return nil
}

func renderTo(w io.Writer, cv *connector.Converter, log zerolog.Logger, name, text, format string) error {
	// The final newline of a file is not part of the message.
	text = strings.TrimSuffix(text, "\n")
	out, err := renderMessage(cv, name, text, format)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	log.Debug().
		Str("input", name).
		Str("format", format).
		Int("bytes", len(text)).
		Msg("Rendered message")
	_, err = fmt.Fprintln(w, out)
	return err
}
