package engine

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/danieljhkim/timetable/internal/config"
	"github.com/danieljhkim/timetable/internal/export"
)

// Export renders the timetable and writes it to disk. Without req.Path the
// file goes to the export directory under a fixed name per format.
func (e *Engine) Export(ctx context.Context, req *ExportRequest) (*ExportResult, error) {
	tt, err := e.load()
	if err != nil {
		return nil, err
	}

	format := req.Format
	if format == "" {
		format = export.FormatText
	}

	now := e.clock.Now()
	var buf bytes.Buffer
	switch format {
	case export.FormatText:
		err = export.WriteText(&buf, tt)
	case export.FormatXLSX:
		err = export.WriteXLSX(&buf, tt, now)
	case export.FormatICS:
		err = export.WriteICS(&buf, tt, now)
	default:
		return nil, NewValidationError("unknown export format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	path := req.Path
	if path == "" {
		path = filepath.Join(e.exportDir, defaultExportName(format))
	}

	replaced, err := e.fs.Exists(path)
	if err != nil {
		return nil, &PersistenceError{Path: path, Err: err}
	}

	if err := e.fs.AtomicWrite(path, buf.Bytes(), 0644); err != nil {
		e.log.Error("export failed", zap.String("path", path), zap.Error(err))
		return nil, &PersistenceError{Path: path, Err: err}
	}
	e.log.Info("timetable exported", zap.String("path", path), zap.String("format", string(format)))

	return &ExportResult{
		Path:       path,
		Format:     format,
		Batches:    len(tt),
		Bytes:      buf.Len(),
		Replaced:   replaced,
		ExportedAt: now,
	}, nil
}

func defaultExportName(format export.Format) string {
	switch format {
	case export.FormatXLSX:
		return config.ExportXLSXName
	case export.FormatICS:
		return config.ExportICSName
	default:
		return config.ExportTextName
	}
}
