package dupfind

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charlievieth/fastwalk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				c.mu.Lock()

				files := c.fileCount
				bytes := c.totalBytes
				c.mu.Unlock()
				hook(files, bytes)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run scans the tree at opt.Path for duplicate files and returns the
// resulting report.
//
// The walk indexes every regular file under its base filename; name
// buckets with two or more members are then hashed and sub-grouped by
// digest. Traversal errors (permission denied included) skip the entry
// and continue. Symlinks are not followed.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Report, error) {
	log := logger{enabled: opt.Debug}

	if opt.Path == "" {
		opt.Path = "."
	}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is a directory
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q is not a directory", opt.Path)
	}

	collector := newCollector()

	// Create child context to ensure progress reporter cleanup
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start progress reporter goroutine
	startProgressReporter(ctx, collector, progressHook, opt.ProgressInterval)

	start := time.Now()

	// Configure fastwalk
	conf := &fastwalk.Config{
		Follow: false, // Don't follow symlinks
	}

	// Walk directory with fastwalk (parallel traversal)
	//nolint:varnamelen // d is standard for DirEntry
	walkErr := fastwalk.Walk(conf, opt.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.printf("[debug]: error accessing path %s: %v\n", path, err)

			return nil // Silently skip errors
		}

		// Check cancellation periodically
		select {
		case <-ctx.Done():
			return context.Canceled
		default:
		}

		// Only regular files are indexed
		if !d.Type().IsRegular() {
			return nil
		}

		fileInfo, err := d.Info()
		if err != nil {
			collector.addError()

			return nil //nolint:nilerr // Intentionally skip errors during walk
		}

		if fileInfo.Size() < opt.MinSize {
			log.printf("[debug]: skipping file (below min size): %s\n", path)

			return nil
		}

		collector.add(path, fileInfo.Size())

		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	report := collector.finalize(log)

	report.Elapsed = time.Since(start)

	return report, nil
}
