// Package render produces printable timetable documents and terminal tables.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/xuri/excelize/v2"
)

// ErrNothingToRender indicates a document was requested without any grid.
var ErrNothingToRender = errors.New("nothing to render")

// maxSheetName is Excel's sheet name length limit.
const maxSheetName = 31

const paperA4 = 9

// book wraps an excelize file under construction.
type book struct {
	f      *excelize.File
	school string
	styles styles
	names  map[string]bool
	sheets int
}

type styles struct {
	title, meta, header, day, cell, pause int
}

func newBook(school string) (*book, error) {
	f := excelize.NewFile()
	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &book{f: f, school: school, styles: st, names: make(map[string]bool)}, nil
}

func newStyles(f *excelize.File) (styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
	grey := excelize.Fill{Type: "pattern", Color: []string{"#D9D9D9"}, Pattern: 1}

	defs := []*excelize.Style{
		{Font: &excelize.Font{Bold: true, Size: 16}, Alignment: center},
		{Font: &excelize.Font{Bold: true, Size: 12}, Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"}},
		{Font: &excelize.Font{Bold: true}, Alignment: center, Border: border, Fill: grey},
		{Font: &excelize.Font{Bold: true}, Alignment: center, Border: border},
		{Alignment: center, Border: border},
		{Alignment: center, Border: border, Fill: grey},
	}
	ids := make([]int, len(defs))
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return styles{}, fmt.Errorf("create style: %w", err)
		}
		ids[i] = id
	}
	return styles{title: ids[0], meta: ids[1], header: ids[2], day: ids[3], cell: ids[4], pause: ids[5]}, nil
}

// addSheet creates the next page of the document.
func (b *book) addSheet(name string) (string, error) {
	name = b.uniqueName(name)
	if b.sheets == 0 {
		if err := b.f.SetSheetName("Sheet1", name); err != nil {
			return "", err
		}
	} else if _, err := b.f.NewSheet(name); err != nil {
		return "", err
	}
	b.sheets++
	return name, nil
}

func (b *book) uniqueName(name string) string {
	base := SheetName(name)
	candidate := base
	for i := 2; b.names[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
	b.names[strings.ToLower(candidate)] = true
	return candidate
}

func (b *book) set(sheet string, col, row int, value interface{}, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheet, cell, value); err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, cell, cell, style)
}

// banner writes the school name across the first row.
func (b *book) banner(sheet string, cols int) error {
	end, err := excelize.CoordinatesToCellName(cols, 1)
	if err != nil {
		return err
	}
	if err := b.set(sheet, 1, 1, b.school, b.styles.title); err != nil {
		return err
	}
	if cols > 1 {
		if err := b.f.MergeCell(sheet, "A1", end); err != nil {
			return err
		}
	}
	return b.f.SetRowHeight(sheet, 1, 28)
}

// finishPage sets the print area and page setup of a sheet.
func (b *book) finishPage(sheet string, area models.CellRange) error {
	ref, err := parser.PrintAreaReference(sheet, area)
	if err != nil {
		return err
	}
	if err := b.f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: ref,
		Scope:    sheet,
	}); err != nil {
		return fmt.Errorf("print area %s: %w", sheet, err)
	}

	// One landscape A4 page per sheet
	orientation := "landscape"
	size := paperA4
	fit := 1
	fitToPage := true
	if err := b.f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
		FitToWidth:  &fit,
		FitToHeight: &fit,
	}); err != nil {
		return err
	}
	if err := b.f.SetSheetProps(sheet, &excelize.SheetPropsOptions{FitToPage: &fitToPage}); err != nil {
		return err
	}
	// Footer: school on the left, page numbers on the right
	return b.f.SetHeaderFooter(sheet, &excelize.HeaderFooterOptions{
		OddFooter: "&L" + escapeHeader(b.school) + "&RPage &P of &N",
	})
}

func (b *book) done() *excelize.File {
	b.f.SetActiveSheet(0)
	return b.f
}

// SheetName makes name a valid Excel sheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Sheet"
	}
	return truncate(name, maxSheetName)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// escapeHeader escapes the header/footer control character.
func escapeHeader(s string) string {
	return strings.ReplaceAll(s, "&", "&&")
}

// FileName turns a teacher or class name into a file name stem.
func FileName(name string) string {
	var sb strings.Builder
	pending := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			if pending && sb.Len() > 0 {
				sb.WriteByte('_')
			}
			pending = false
			sb.WriteRune(r)
			continue
		}
		pending = true
	}
	if sb.Len() == 0 {
		return "schedule"
	}
	return sb.String()
}

// WriteFile saves f to path. The workbook is serialized to memory first so
// a failure leaves no partial file behind.
func WriteFile(f *excelize.File, path string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fmt.Errorf("serialize %s: %w", filepath.Base(path), err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
