package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/timetable/internal/engine"
	"github.com/danieljhkim/timetable/internal/export"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the timetable to a file",
	Long: `Write every batch to a file.

The text format lists each batch, day and slot with its time range. The
xlsx format writes a workbook with one sheet per batch. The ics format
writes a calendar where every assigned slot repeats weekly from the
current week. Without --output the file is written next to the timetable
binary, or to export_dir when configured.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return engine.NewValidationError("%v", err)
		}

		path := exportOutput
		if path != "" {
			if path, err = filepath.Abs(path); err != nil {
				return fmt.Errorf("failed to resolve output path: %w", err)
			}
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		result, err := eng.Export(context.Background(), &engine.ExportRequest{
			Format: format,
			Path:   path,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		PrintSuccess(fmt.Sprintf("Exported timetable to %s", result.Path))
		if result.Replaced {
			PrintWarning("Replaced the previous export")
		}
		PrintLabelValue("Format", string(result.Format))
		PrintLabelValue("Batches", PrintCount(result.Batches, "batch", "batches"))
		PrintLabelValue("Size", fmt.Sprintf("%d bytes", result.Bytes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "text", "Export format: text, xlsx or ics")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
}
