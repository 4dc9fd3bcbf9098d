package port

import (
	"context"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
)

// WorkbookWriter renders a workbook description to a spreadsheet file and
// returns the path it was written to.
type WorkbookWriter interface {
	Write(ctx context.Context, wb domain.Workbook, fileName string) (string, error)
}
