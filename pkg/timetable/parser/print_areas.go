package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the defined name Excel uses for a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// ReadPrintAreas returns the print areas of a workbook keyed by sheet name.
func ReadPrintAreas(f *excelize.File) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, PrintAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// PrintAreaReference formats area on sheet as an absolute reference such
// as 'Sheet 1'!$A$1:$D$10.
func PrintAreaReference(sheet string, area models.CellRange) (string, error) {
	start, err := excelize.CoordinatesToCellName(area.C1, area.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(area.C2, area.R2, true)
	if err != nil {
		return "", err
	}
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	return fmt.Sprintf("%s!%s:%s", quoted, start, end), nil
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parsePrintAreaReference(ref string) (string, []models.CellRange) {
	var areas []models.CellRange

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}

		sheet := part[:idx]
		if strings.HasPrefix(sheet, "'") && strings.HasSuffix(sheet, "'") && len(sheet) >= 2 {
			sheet = strings.ReplaceAll(sheet[1:len(sheet)-1], "''", "'")
		}
		if sheetName == "" {
			sheetName = sheet
		}

		if area, ok := parseRange(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (models.CellRange, bool) {
	parts := strings.Split(strings.ReplaceAll(rangeStr, "$", ""), ":")
	if len(parts) != 2 {
		return models.CellRange{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.CellRange{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.CellRange{}, false
	}

	return models.CellRange{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
