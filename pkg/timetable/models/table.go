package models

// RawTable is a worksheet read as text, before normalization.
type RawTable struct {
	// Sheet is the worksheet the table was read from.
	Sheet string `json:"sheet"`
	// Header is the first row of the sheet. Its width defines the table width.
	Header []string `json:"header"`
	// SubHeader is the discarded second row, if any.
	SubHeader []string `json:"sub_header,omitempty"`
	// Rows holds the data rows. Row numbers are 1-based sheet rows.
	Rows []RawRow `json:"rows"`
}

// RawRow is one data row of a RawTable.
type RawRow struct {
	// R is the sheet row number (1-based).
	R int `json:"r"`
	// Cells holds the cell text, first column first. Trailing blank cells
	// may be missing.
	Cells []string `json:"cells"`
}
