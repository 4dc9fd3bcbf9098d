package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
)

// ExcelWriter renders workbook descriptions to .xlsx files in a fixed
// output directory.
type ExcelWriter struct {
	dir string
}

func NewExcelWriter(dir string) (*ExcelWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &ExcelWriter{dir: dir}, nil
}

func (w *ExcelWriter) Write(ctx context.Context, wb domain.Workbook, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(wb.Sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range wb.Sheets {
		if i == 0 {
			// Reuse the default sheet for the first one.
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return "", fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return "", fmt.Errorf("add sheet %s: %w", sheet.Name, err)
		}
		for rowIdx, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return "", err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return "", fmt.Errorf("write row %d of %s: %w", rowIdx+1, sheet.Name, err)
			}
		}
	}

	path := filepath.Join(w.dir, fileName)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}
