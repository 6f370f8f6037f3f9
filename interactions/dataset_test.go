package interactions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "interactions.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}
	return path
}

func TestLoadCSVFile(t *testing.T) {
	path := writeTempCSV(t, "id,Drug_A,notes,Drug_B,Level\n1,Aspirin,x,Warfarin,Major\n2,Ibuprofen,y,Lisinopril,Moderate\n")

	ds, err := LoadCSVFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(ds.Headers()) != 5 {
		t.Errorf("Expected 5 headers, got %d", len(ds.Headers()))
	}
	if len(ds.Rows()) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(ds.Rows()))
	}
	if ds.Rows()[0][1] != "Aspirin" {
		t.Errorf("Expected raw cell Aspirin, got %q", ds.Rows()[0][1])
	}
}

func TestLoadCSVFileNotFound(t *testing.T) {
	_, err := LoadCSVFile(filepath.Join(t.TempDir(), "missing.csv"))
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}

func TestLoadCSVFileMalformed(t *testing.T) {
	// Unbalanced quote makes the CSV parser fail
	path := writeTempCSV(t, "a,b,c\n1,\"unterminated,3\n")

	_, err := LoadCSVFile(path)
	if err == nil {
		t.Fatal("Expected error for malformed CSV, got nil")
	}
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("Expected ErrDataLoad, got %v", err)
	}
}

func TestLoadCSVFileEmpty(t *testing.T) {
	path := writeTempCSV(t, "")

	_, err := LoadCSVFile(path)
	if err == nil {
		t.Fatal("Expected error for empty file, got nil")
	}
	if !errors.Is(err, ErrDataLoad) {
		t.Errorf("Expected ErrDataLoad, got %v", err)
	}
}

func TestLoadCSVFileLatin1Fallback(t *testing.T) {
	// 0xE9 is 'é' in ISO-8859-1 and invalid as standalone UTF-8
	content := []byte("id,Drug_A,notes,Drug_B,Level\n1,Prot\xE9ine,x,Warfarin,Major\n")
	path := filepath.Join(t.TempDir(), "latin1.csv")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write temp CSV: %v", err)
	}

	ds, err := LoadCSVFile(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if ds.Rows()[0][1] != "Protéine" {
		t.Errorf("Expected decoded Protéine, got %q", ds.Rows()[0][1])
	}
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTempCSV(t, "id,Drug_A,notes,Drug_B,Level\n1, Aspirin ,x,WARFARIN,Major\n")

	table, err := FileLoader{Path: path}.Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("Expected 1 record, got %d", table.Len())
	}

	rec := table.Records()[0]
	if rec.DrugA != "aspirin" || rec.DrugB != "warfarin" {
		t.Errorf("Expected normalized names, got (%q, %q)", rec.DrugA, rec.DrugB)
	}
}

func TestFileLoaderLoadMissingFile(t *testing.T) {
	_, err := FileLoader{Path: filepath.Join(t.TempDir(), "nope.csv")}.Load()
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("Expected ErrSourceNotFound, got %v", err)
	}
}
