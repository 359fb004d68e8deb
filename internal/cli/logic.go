package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dupfind/internal/dupfind"
)

// ErrRootMissing indicates that the supplied root directory does not
// exist. The user-facing message is printed before the error is
// returned, so callers only need to map it to a failure exit code.
var ErrRootMissing = errors.New("pasta raiz não existe")

// promptRoot prints the banner, asks for the root directory and reads
// one line from input.
//
//nolint:forbidigo // Interactive prompt to console
func promptRoot(input *bufio.Reader) (string, error) {
	fmt.Println("Localizar duplicatas!")
	fmt.Print("Informe pasta raiz: ")

	line, err := input.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading root directory: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func logic(options dupfind.Options) error {
	if options.Path == "" {
		root, err := promptRoot(bufio.NewReader(os.Stdin))
		if err != nil {
			return err
		}

		options.Path = root
	}

	// Validate existence before any scanning starts
	if _, err := os.Stat(options.Path); err != nil {
		//nolint:forbidigo // Error message to console
		fmt.Println("Pasta raiz não existe.")

		return ErrRootMissing
	}

	enableProgress := strings.ToLower(options.Output) != "json" &&
		!options.Debug &&
		isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(files, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(files, bytes int64) {
			msg := fmt.Sprintf("Analisando… %d arquivos, %s",
				files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	report, err := dupfind.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	switch strings.ToLower(options.Output) {
	case "json":
		return PrintJSON(report, os.Stdout)
	case "table":
		return PrintTable(report, os.Stdout)
	default:
		return fmt.Errorf("unknown output format: %s", options.Output)
	}
}
