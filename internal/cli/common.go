package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/danieljhkim/timetable/internal/clock"
	"github.com/danieljhkim/timetable/internal/config"
	"github.com/danieljhkim/timetable/internal/engine"
	"github.com/danieljhkim/timetable/internal/fsops"
	"github.com/danieljhkim/timetable/internal/logger"
	"github.com/danieljhkim/timetable/internal/random"
	"github.com/danieljhkim/timetable/internal/stores"
)

var (
	// promptInput is where confirmation answers are read from
	promptInput io.Reader = os.Stdin

	// promptInteractive reports whether a person can answer prompts
	promptInteractive = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine() (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	cfg, err := config.Load(paths, configFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.Log.Level = "debug"
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	repo := stores.NewFileTimetableRepo(fs, cfg.DataFile)
	picker := random.NewCryptoPicker()
	clk := clock.NewRealClock()

	return engine.New(repo, fs, picker, clk, log, cfg.ExportDir), nil
}

// formatJSON formats a value as JSON.
func formatJSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	s, err := formatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, s)
	return err
}

// promptConfirm prompts the user for a yes/no confirmation.
// Without a terminal on stdin the answer is no.
func promptConfirm(prompt string) bool {
	if !promptInteractive() {
		return false
	}
	fmt.Printf("%s (y/N): ", prompt)
	reader := bufio.NewReader(promptInput)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
