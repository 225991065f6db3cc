package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/WallPanel/internal/model"
)

func TestWriteCSV(t *testing.T) {
	result := model.LayoutResult{Pieces: []model.Piece{
		{Index: 1, Kind: model.KindSheet, Rect: model.NewRect(0, 0, 1200, 2400)},
		{Index: 2, Kind: model.KindRemainder, Rect: model.NewRect(0, 2400, 1200, 600)},
		{Index: 3, Kind: model.KindFragment, Rect: model.NewRect(2420, 0, 1180.5, 2400)},
	}}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, result); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	want := "index,width_mm,height_mm\n1,1200,2400\n2,1200,600\n3,1180.5,2400\n"
	if buf.String() != want {
		t.Errorf("unexpected CSV:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExportCSV_MatchesPieces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cut_list.csv")
	result := buildTestResult(t)

	if err := ExportCSV(path, result); err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read CSV: %v", err)
	}
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("cannot parse CSV: %v", err)
	}
	if len(records) != len(result.Pieces)+1 {
		t.Fatalf("expected %d records, got %d", len(result.Pieces)+1, len(records))
	}
	if strings.Join(records[0], ",") != "index,width_mm,height_mm" {
		t.Errorf("unexpected header %v", records[0])
	}
}

func TestExportCSV_EmptyResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := ExportCSV(path, model.LayoutResult{}); err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
