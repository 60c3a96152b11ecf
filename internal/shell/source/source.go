package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/artpar/cmdeploy/internal/core/document"
)

// Options selects where the deployment document comes from. Exactly one of
// File and URL must be set.
type Options struct {
	File string // "-" reads stdin
	URL  string

	Username     string
	Password     string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Load acquires and parses the deployment document selected by opts.
func Load(ctx context.Context, opts Options, logger *slog.Logger) (document.Value, error) {
	switch {
	case opts.File == "" && opts.URL == "":
		return nil, ErrNoInput
	case opts.File != "" && opts.URL != "":
		return nil, ErrConflictingInput
	case opts.File != "":
		return ReadFile(opts.File)
	}

	client := NewClient(Config{
		Username:     opts.Username,
		Password:     opts.Password,
		Timeout:      opts.Timeout,
		RetryMax:     opts.RetryMax,
		RetryWaitMin: opts.RetryWaitMin,
		RetryWaitMax: opts.RetryWaitMax,
	}, logger)

	data, err := client.Fetch(ctx, opts.URL)
	if err != nil {
		return nil, err
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", opts.URL, err)
	}
	return doc, nil
}

// ReadFile reads and parses a deployment document from disk. The path "-"
// reads stdin.
func ReadFile(path string) (document.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input file %s: %w", path, err)
	}

	doc, err := document.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}
