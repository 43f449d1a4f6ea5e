package entity

// Table is a delimited file held in memory. Header order and cell text are
// kept exactly as read.
type Table struct {
	Header []string
	Rows   [][]string
}

// ColumnIndex returns the position of name in the header, or -1.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}
