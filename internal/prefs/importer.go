package prefs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/prefkit/prefsync/internal/logger"
)

// Code is the result code of an import invocation. The values mirror the
// host application's convention for this routine and are surfaced on the
// importer API; process exit codes are mapped separately by the CLI.
type Code int

const (
	// CodeCancelled means the user cancelled file selection.
	CodeCancelled Code = 0

	// CodeSuccess means the import completed.
	CodeSuccess Code = 1

	// CodeOpenFailure means the preferences file could not be opened.
	CodeOpenFailure Code = -1

	// CodeFailure means any other failure.
	CodeFailure Code = -2
)

// Options control a single import run.
type Options struct {
	// IncludeBools enables importing boolean-typed preferences, including
	// the extra-booleans set. When false no boolean preference is touched.
	IncludeBools bool

	// DryRun parses and validates but never writes to the sink.
	DryRun bool
}

// Summary reports what one import run did.
type Summary struct {
	// Lines is the total number of lines read.
	Lines int

	// Applied is the number of entries written to the sink.
	Applied int

	// Skipped counts entries whose name is not in the registry.
	Skipped int

	// Malformed counts entries with a recognized name but an invalid value.
	Malformed int
}

const retryBackoff = 50 * time.Millisecond

// Importer applies recognized preference entries to a sink.
type Importer struct {
	sink     Sink
	registry *Registry
	logger   logger.Logger
}

// NewImporter creates an importer writing to sink. A nil registry selects
// the default host vocabulary; a nil log discards diagnostics.
func NewImporter(sink Sink, registry *Registry, log logger.Logger) *Importer {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if log == nil {
		log = logger.Discard
	}
	return &Importer{
		sink:     sink,
		registry: registry,
		logger:   log,
	}
}

// ImportFile opens path and imports it. The file handle is released on every
// exit path. A file that cannot be opened yields CodeOpenFailure; any other
// failure yields CodeFailure.
func (i *Importer) ImportFile(ctx context.Context, path string, opts Options) (Summary, Code, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, CodeOpenFailure, fmt.Errorf("open preferences file: %w", err)
	}
	defer f.Close()

	summary, err := i.Import(ctx, f, opts)
	if err != nil {
		return summary, CodeFailure, err
	}
	return summary, CodeSuccess, nil
}

// Import reads preference entries from src and applies the recognized ones
// to the sink. The pass is retried exactly once when the sink reports the
// known transient color failure; any other error propagates immediately.
func (i *Importer) Import(ctx context.Context, src io.ReadSeeker, opts Options) (Summary, error) {
	log := i.logger.WithField("run_id", uuid.NewString())

	var summary Summary
	backoff := retry.WithMaxRetries(1, retry.NewConstant(retryBackoff))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("rewind preferences input: %w", err)
		}

		s, err := i.importOnce(ctx, src, opts, log)
		if err != nil {
			if errors.Is(err, ErrTransientColorFailure) {
				log.Warn("import hit known transient color failure, retrying once", map[string]interface{}{
					"error": err.Error(),
				})
				return retry.RetryableError(err)
			}
			return err
		}

		summary = s
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	log.Info("preferences import finished", map[string]interface{}{
		"lines":     summary.Lines,
		"applied":   summary.Applied,
		"skipped":   summary.Skipped,
		"malformed": summary.Malformed,
		"dry_run":   opts.DryRun,
	})
	return summary, nil
}

// importOnce is a single synchronous pass over src.
func (i *Importer) importOnce(ctx context.Context, src io.Reader, opts Options, log logger.Logger) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		summary.Lines++

		name, value, ok := ParseEntry(scanner.Text())
		if !ok {
			continue
		}

		kind := i.registry.Kind(name, opts.IncludeBools)
		if kind == KindUnknown {
			// Intentionally silent: a full preferences dump may carry
			// many keys this host does not know.
			summary.Skipped++
			continue
		}

		if err := i.apply(name, value, kind, opts.DryRun, summary.Lines, log); err != nil {
			if errors.Is(err, errMalformedValue) {
				summary.Malformed++
				continue
			}
			return summary, err
		}
		summary.Applied++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("read preferences input: %w", err)
	}

	return summary, nil
}

// errMalformedValue marks per-line coercion failures, which are recoverable.
var errMalformedValue = errors.New("malformed preference value")

// apply coerces value according to kind and forwards it to the sink.
func (i *Importer) apply(name, value string, kind Kind, dryRun bool, line int, log logger.Logger) error {
	warn := func(cause error) error {
		log.Warn("skipping malformed preference value", map[string]interface{}{
			"line":   line,
			"name":   name,
			"kind":   kind.String(),
			"reason": cause.Error(),
		})
		return errMalformedValue
	}

	switch kind {
	case KindBoolean:
		v, err := parseBooleanValue(value)
		if err != nil {
			return warn(err)
		}
		if dryRun {
			return nil
		}
		if err := i.sink.SetBoolean(name, v); err != nil {
			return fmt.Errorf("set boolean %q: %w", name, err)
		}

	case KindInteger:
		v, err := parseIntegerValue(value)
		if err != nil {
			return warn(err)
		}
		if dryRun {
			return nil
		}
		if err := i.sink.SetInteger(name, v); err != nil {
			return fmt.Errorf("set integer %q: %w", name, err)
		}

	case KindColor:
		c, err := parseColorValue(value)
		if err != nil {
			return warn(err)
		}
		if dryRun {
			return nil
		}
		if err := i.sink.SetColor(name, c); err != nil {
			return fmt.Errorf("set color %q: %w", name, err)
		}

	default:
		return fmt.Errorf("unreachable preference kind %d for %q", kind, name)
	}

	return nil
}
