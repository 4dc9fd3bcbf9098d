package domain

// Row is an ordered list of cells. Cells are strings or numbers; the
// workbook sink accepts nothing else.
type Row []any

// Sheet is a named, ordered grid of rows.
type Sheet struct {
	Name string
	Rows []Row
}

// Workbook is the export pipeline's output contract: an ordered list of
// sheets handed to an external writer.
type Workbook struct {
	Sheets []Sheet
}
