package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/paasword/paasword-go/internal/config"
	"github.com/paasword/paasword-go/internal/generator"
	"github.com/paasword/paasword-go/internal/preset"
	"github.com/paasword/paasword-go/internal/session"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: paasword [flags]\n\nGenerate passwords from presets or custom character rules.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	presetName := flag.String("preset", "", "preset to start with, by key (pincode) or display name (\"PIN code\")")
	printOnly := flag.Bool("print", false, "print one password to stdout and exit")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*presetName, *printOnly); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(presetName string, printOnly bool) error {
	cfg := config.Load()

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := newSession(cfg, presetName)
	if err != nil {
		return err
	}

	if printOnly {
		return printPassword(os.Stdout, sess.State())
	}

	_, err = tea.NewProgram(newModel(sess, clipboard.WriteAll), tea.WithAltScreen()).Run()
	return err
}

// newSession starts from the -preset flag if given, else from the configured
// settings snapshot, else from the default preset.
func newSession(cfg config.Config, presetName string) (*session.Session, error) {
	key := cfg.DefaultPreset
	if presetName != "" {
		k, err := parsePreset(presetName)
		if err != nil {
			return nil, err
		}
		key = k
	}

	sess, err := session.New(key, nil)
	if err != nil {
		return nil, err
	}
	if presetName == "" && cfg.Settings != nil {
		sess.Apply(*cfg.Settings)
	}
	return sess, nil
}

// parsePreset accepts a preset key or its display name.
func parsePreset(raw string) (preset.Key, error) {
	key, err := preset.Parse(raw)
	if err == nil {
		return key, nil
	}
	if k, nameErr := preset.KeyForDisplayName(raw); nameErr == nil {
		return k, nil
	}
	return "", err
}

func printPassword(w io.Writer, st session.State) error {
	if st.Err != nil {
		return errors.New(failureText(st.Err))
	}
	_, err := fmt.Fprintln(w, st.Password)
	return err
}

// loadDotEnv loads environment variables from path if the file exists.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// setupLogging routes slog to path, or discards it; the terminal belongs to the UI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { f.Close() }, nil
}

// failureText turns a generation failure into a user-facing warning.
func failureText(err error) string {
	var poolErr *generator.UniquePoolError
	switch {
	case errors.Is(err, generator.ErrStartWithLetter):
		return "\"Start with a letter\" is on, but no letter set is enabled. Enable lowercase or UPPERCASE letters."
	case errors.Is(err, generator.ErrNoCharacterClass):
		return "No character set selected for generation."
	case errors.As(err, &poolErr):
		return fmt.Sprintf("Cannot generate without repeats: %d characters needed, only %d unique available.",
			poolErr.Requested, poolErr.Available)
	default:
		return err.Error()
	}
}
