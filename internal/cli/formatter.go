package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/dupfind/internal/dupfind"
)

// PrintJSON outputs the report in JSON format.
func PrintJSON(report *dupfind.Report, writer io.Writer) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the report in human-readable form: one header per
// duplicate set followed by its paths, then the reclaimable-space
// estimate. Headers are bold when writing to a terminal.
func PrintTable(report *dupfind.Report, writer io.Writer) error {
	if len(report.Sets) == 0 {
		_, err := fmt.Fprintln(writer, "Nenhum arquivo duplicado encontrado.")

		return err
	}

	header := color.New(color.Bold)

	for _, set := range report.Sets {
		fmt.Fprintln(writer, header.Sprintf("Arquivos duplicados encontrados para o nome: %s", set.Name))

		for _, path := range set.Paths {
			fmt.Fprintf(writer, " - %s\n", path)
		}
	}

	fmt.Fprintf(writer, "Tamanho em bytes que pode ser liberado: %d bytes (%s)\n",
		report.ReclaimableBytes,
		humanize.IBytes(uint64(report.ReclaimableBytes))) //nolint:gosec // Bytes is always positive

	return nil
}
