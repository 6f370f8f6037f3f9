package validation

import (
	"testing"

	"github.com/ericjunior52/MED-SAFE/interactions"
)

type stubDataset struct {
	headers []string
	rows    [][]string
}

func (d *stubDataset) Headers() []string { return d.headers }
func (d *stubDataset) Rows() [][]string  { return d.rows }

func TestValidateInputAcceptsDrugNames(t *testing.T) {
	v := NewDataValidator()

	valid := []string{
		"Aspirin",
		"5-FU",
		"co-trimoxazole",
		"St. John's wort",
		"vitamin B12",
		"insulin (human)",
		"warfarin/aspirin",
	}

	for _, input := range valid {
		if err := v.ValidateInput(input); err != nil {
			t.Errorf("Expected %q to be accepted, got %v", input, err)
		}
	}
}

func TestValidateInputRejectsDangerousPatterns(t *testing.T) {
	v := NewDataValidator()

	dangerous := []string{
		"<script>alert(1)</script>",
		"aspirin' or 1=1 --",
		"union select * from users",
		"../../../etc/passwd",
		"`rm -rf`",
		"${jndi}",
	}

	for _, input := range dangerous {
		if err := v.ValidateInput(input); err == nil {
			t.Errorf("Expected %q to be rejected", input)
		}
	}
}

func TestValidateInputRejectsOversized(t *testing.T) {
	v := NewDataValidator()

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}

	if err := v.ValidateInput(string(long)); err == nil {
		t.Error("Expected oversized input to be rejected")
	}
}

func TestReportDataQuality(t *testing.T) {
	table, err := interactions.NewTable(&stubDataset{
		headers: []string{"id", "Drug_A", "notes", "Drug_B", "Level"},
		rows: [][]string{
			{"1", "aspirin", "x", "warfarin", "Major"},
			{"2", "warfarin", "x", "aspirin", "Major"}, // duplicate pair, reversed
			{"3", "ibuprofen", "x", "ibuprofen", "Minor"},
			{"4", "", "x", "lisinopril", ""},
		},
	})
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	report := NewDataValidator().ReportDataQuality(table)

	if report.TotalRecords != 4 {
		t.Errorf("Expected 4 total records, got %d", report.TotalRecords)
	}
	if report.DuplicatePairs != 1 {
		t.Errorf("Expected 1 duplicate pair, got %d", report.DuplicatePairs)
	}
	if report.SelfInteractionRows != 1 {
		t.Errorf("Expected 1 self-interaction row, got %d", report.SelfInteractionRows)
	}
	if report.RowsWithEmptyLevel != 1 {
		t.Errorf("Expected 1 row with empty level, got %d", report.RowsWithEmptyLevel)
	}
	if report.RowsWithEmptyDrug != 1 {
		t.Errorf("Expected 1 row with empty drug, got %d", report.RowsWithEmptyDrug)
	}
}

func TestReportDataQualityCleanTable(t *testing.T) {
	table, err := interactions.NewTable(&stubDataset{
		headers: []string{"id", "Drug_A", "notes", "Drug_B", "Level"},
		rows: [][]string{
			{"1", "aspirin", "x", "warfarin", "Major"},
			{"2", "ibuprofen", "x", "lisinopril", "Moderate"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to build table: %v", err)
	}

	report := NewDataValidator().ReportDataQuality(table)

	if report.DuplicatePairs != 0 || report.SelfInteractionRows != 0 ||
		report.RowsWithEmptyLevel != 0 || report.RowsWithEmptyDrug != 0 {
		t.Errorf("Expected clean report, got %+v", report)
	}
}
