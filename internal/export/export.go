// Package export writes the task list as JSON, CSV or PDF.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"tasklist/internal/output"
	"tasklist/internal/storage"
)

// ErrUnknownFormat is returned for a format other than json, csv or pdf.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported format names.
var Formats = []string{"json", "csv", "pdf"}

// Write encodes tasks to w in the named format.
func Write(w io.Writer, format string, tasks []storage.Task) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return writeJSON(w, tasks)
	case "csv":
		return writeCSV(w, tasks)
	case "pdf":
		return writePDF(w, tasks)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, tasks []storage.Task) error {
	if tasks == nil {
		tasks = []storage.Task{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tasks)
}

func writeCSV(w io.Writer, tasks []storage.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "created_at", "updated_at"}); err != nil {
		return err
	}
	for _, t := range tasks {
		record := []string{
			t.ID.String(),
			t.Title,
			t.CreatedAt.Format(time.RFC3339),
			t.UpdatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePDF(w io.Writer, tasks []storage.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Task List", true)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Task List")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	if len(tasks) == 0 {
		pdf.Cell(40, 7, output.NoTasks)
	}
	// The core fonts are cp1252; translate so accented titles survive
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, output.NormalizeTitle(t.Title))
		pdf.MultiCell(0, 7, tr(line), "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
