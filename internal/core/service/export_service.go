package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yushi512/mitasai-casher/internal/core/domain"
	"github.com/yushi512/mitasai-casher/internal/port"
)

var (
	ErrNoSales           = errors.New("no sales recorded yet")
	ErrWriterUnavailable = errors.New("workbook writer is not available")
)

// ExportService turns the sales ledger into a three-sheet workbook and
// hands it to the writer. No file is produced on any error path.
type ExportService struct {
	writer port.WorkbookWriter
	now    func() time.Time
}

func NewExportService(writer port.WorkbookWriter) *ExportService {
	return &ExportService{writer: writer, now: time.Now}
}

// Export writes the full ledger and returns the path of the written file.
func (s *ExportService) Export(ctx context.Context, sales []domain.Sale) (string, error) {
	if s.writer == nil {
		return "", ErrWriterUnavailable
	}
	if len(sales) == 0 {
		return "", ErrNoSales
	}
	return s.writer.Write(ctx, BuildWorkbook(sales), exportFileName(s.now()))
}

// BuildWorkbook lays out the per-sale log, the running summary, and the
// two-hour time-slot aggregation.
func BuildWorkbook(sales []domain.Sale) domain.Workbook {
	salesLog := domain.Sheet{Name: "SalesLog"}
	salesLog.Rows = append(salesLog.Rows,
		domain.Row{"No", "日時", "商品内訳", "小計", "割引", "合計", "個数計"})

	var totalAmount, totalQuantity int
	for i, sale := range sales {
		parts := make([]string, len(sale.Items))
		for j, item := range sale.Items {
			parts[j] = fmt.Sprintf("%s×%d", item.Name, item.Quantity)
		}
		salesLog.Rows = append(salesLog.Rows, domain.Row{
			i + 1,
			sale.Timestamp.Format("2006/01/02 15:04:05"),
			strings.Join(parts, ", "),
			sale.Subtotal,
			fmt.Sprintf("%s (-%d)", sale.DiscountLabel, sale.DiscountAmount),
			sale.Total,
			sale.TotalQuantity,
		})
		totalAmount += sale.Total
		totalQuantity += sale.TotalQuantity
	}

	summary := domain.Sheet{
		Name: "Summary",
		Rows: []domain.Row{
			{"項目", "値"},
			{"売上合計金額", totalAmount},
			{"売上総数", totalQuantity},
			{"会計件数", len(sales)},
		},
	}

	slots := map[string]int{}
	for _, sale := range sales {
		slots[domain.TimeSlotLabel(sale.Timestamp)] += sale.TotalQuantity
	}
	keys := make([]string, 0, len(slots))
	for k := range slots {
		keys = append(keys, k)
	}
	// Labels are zero-padded, so string order is chronological order.
	sort.Strings(keys)

	bySlot := domain.Sheet{Name: "ByTimeSlot"}
	bySlot.Rows = append(bySlot.Rows, domain.Row{"時間帯 (2h)", "売上個数"})
	for _, k := range keys {
		bySlot.Rows = append(bySlot.Rows, domain.Row{k, slots[k]})
	}

	return domain.Workbook{Sheets: []domain.Sheet{salesLog, summary, bySlot}}
}

// exportFileName embeds a sortable UTC stamp at second resolution.
func exportFileName(t time.Time) string {
	return fmt.Sprintf("mitasai_sales_%s.xlsx", t.UTC().Format("2006-01-02T15-04-05"))
}
