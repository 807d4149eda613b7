package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/xuri/excelize/v2"
)

func sampleRecords(t *testing.T) []requisition.Requisition {
	t.Helper()
	ledger := requisition.NewLedger()
	ledger.Submit(requisition.Submission{
		Date: "2024-03-01", StaffID: "S1", StaffName: "Ann",
		Entries: []requisition.ItemEntry{{Name: "Pen", Price: "2.50"}, {Name: "Paper", Price: "1.00"}, {Done: true}},
	})
	ledger.Submit(requisition.Submission{
		Date: "2024-03-02", StaffID: "S2", StaffName: "Bob",
		Entries: []requisition.ItemEntry{{Name: "Laptop", Price: "900"}, {Done: true}},
	})
	return ledger.List()
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "requisitions.csv")
	if err := Write(path, sampleRecords(t)); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	want := []string{"10001", "2024-03-01", "S1", "Ann", "2", "3.50", "Approved", "S1001"}
	for i, v := range want {
		if rows[1][i] != v {
			t.Fatalf("row 1 col %d = %q, want %q", i, rows[1][i], v)
		}
	}
	if rows[2][6] != "Pending" || rows[2][7] != "" {
		t.Fatalf("unexpected pending row: %v", rows[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requisitions.xlsx")
	if err := Write(path, sampleRecords(t)); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Requisition ID" || rows[2][0] != "10002" {
		t.Fatalf("unexpected rows: %v", rows)
	}
	if rows[1][7] != "S1001" {
		t.Fatalf("expected approval reference, got %v", rows[1])
	}
}

func TestWrite_UnsupportedExtension(t *testing.T) {
	if err := Write(filepath.Join(t.TempDir(), "out.json"), nil); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}
