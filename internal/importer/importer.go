// Package importer provides CSV, Excel and DXF import of wall lists for
// batch layout. It supports automatic delimiter detection, flexible column
// mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/WallPanel/internal/model"
	"github.com/xuri/excelize/v2"
)

// WallEntry is one wall to lay out, with an optional door.
type WallEntry struct {
	Label string
	Wall  model.WallSpec
	Door  model.DoorSpec
}

// Request applies the wall and door of the entry to a base request.
func (e WallEntry) Request(base model.LayoutRequest) model.LayoutRequest {
	req := base
	req.Wall = e.Wall
	req.Door = e.Door
	return req
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Walls    []WallEntry
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label      int
	Width      int
	Height     int
	DoorWidth  int
	DoorHeight int
	DoorX      int
}

// headerAliases maps canonical column names to their accepted aliases
// (lowercase, with underscores and dashes read as spaces).
var headerAliases = map[string][]string{
	"label":       {"label", "name", "wall", "wall name", "room", "description", "desc", "id"},
	"width":       {"width", "w", "wall width", "wall w", "length", "len"},
	"height":      {"height", "h", "wall height", "wall h"},
	"door width":  {"door width", "door w", "dw", "opening width"},
	"door height": {"door height", "door h", "dh", "opening height"},
	"door x":      {"door x", "door offset", "door x offset", "x offset", "dx", "x"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ", "(mm)", "").Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSuffix(s, " mm")
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a default positional
// mapping (label, width, height, door width, door height, door x) and false if
// no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Label:      -1,
		Width:      -1,
		Height:     -1,
		DoorWidth:  -1,
		DoorHeight: -1,
		DoorX:      -1,
	}
	slots := map[string]*int{
		"label":       &mapping.Label,
		"width":       &mapping.Width,
		"height":      &mapping.Height,
		"door width":  &mapping.DoorWidth,
		"door height": &mapping.DoorHeight,
		"door x":      &mapping.DoorX,
	}

	isHeader := false
	for i, cell := range row {
		normalized := normalizeHeader(cell)
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				if slot := slots[role]; *slot == -1 {
					*slot = i
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{
			Label:      0,
			Width:      1,
			Height:     2,
			DoorWidth:  3,
			DoorHeight: 4,
			DoorX:      5,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseNumber reads an optional numeric cell. Comma decimals are accepted.
func parseNumber(s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// parseRow extracts a WallEntry from a row using the given column mapping.
// Returns the entry, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, wallCount int) (WallEntry, string, string) {
	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Wall %d", wallCount+1)
	}

	widthStr := getCell(row, mapping.Width)
	width, ok, err := parseNumber(widthStr)
	if !ok {
		return WallEntry{}, fmt.Sprintf("%s: Missing width value", rowLabel), ""
	}
	if err != nil {
		return WallEntry{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
	}

	heightStr := getCell(row, mapping.Height)
	height, ok, err := parseNumber(heightStr)
	if !ok {
		return WallEntry{}, fmt.Sprintf("%s: Missing height value", rowLabel), ""
	}
	if err != nil {
		return WallEntry{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
	}

	if width <= 0 || height <= 0 {
		return WallEntry{}, fmt.Sprintf("%s: Wall width and height must be positive", rowLabel), ""
	}

	entry := WallEntry{Label: label, Wall: model.WallSpec{Width: width, Height: height}}

	dwStr := getCell(row, mapping.DoorWidth)
	dw, hasDW, err := parseNumber(dwStr)
	if err != nil {
		return WallEntry{}, fmt.Sprintf("%s: Invalid door width '%s'", rowLabel, dwStr), ""
	}
	dhStr := getCell(row, mapping.DoorHeight)
	dh, hasDH, err := parseNumber(dhStr)
	if err != nil {
		return WallEntry{}, fmt.Sprintf("%s: Invalid door height '%s'", rowLabel, dhStr), ""
	}
	dxStr := getCell(row, mapping.DoorX)
	dx, hasDX, err := parseNumber(dxStr)
	if err != nil {
		return WallEntry{}, fmt.Sprintf("%s: Invalid door offset '%s'", rowLabel, dxStr), ""
	}

	var warning string
	switch {
	case !hasDW && !hasDH:
		// No door on this wall.
	case hasDW != hasDH || dw <= 0 || dh <= 0:
		warning = fmt.Sprintf("%s: Incomplete door size, wall imported without a door", rowLabel)
	case hasDX:
		entry.Door = model.DoorSpec{Width: dw, Height: dh, X: dx}
	default:
		entry.Door = model.CenteredDoor(entry.Wall, dw, dh)
	}

	if !entry.Door.Absent() && entry.Door.ClipTo(entry.Wall) != entry.Door {
		warning = fmt.Sprintf("%s: Door extends beyond the wall and will be clipped", rowLabel)
	}

	return entry, "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports walls from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports walls from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports walls from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportFile picks the importer from the file extension.
func ImportFile(path string) ImportResult {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xlsm"):
		return ImportExcel(path)
	case strings.HasSuffix(lower, ".dxf"):
		return ImportDXF(path)
	default:
		return ImportCSV(path)
	}
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into walls.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 3 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
			// An unrecognized header: skip it but keep positional mapping
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		entry, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Walls))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Walls = append(result.Walls, entry)
	}

	return result
}
