package interactions

import (
	"fmt"
	"regexp"
	"strings"
)

// numericOnlyRegex matches names made of nothing but digits, dots, commas and
// whitespace. Compiled once at package initialization.
var numericOnlyRegex = regexp.MustCompile(`^[\d.,\s]+$`)

// Record is one row of the interaction dataset. DrugA and DrugB are stored
// normalized (lowercase, trimmed); Level is kept verbatim.
type Record struct {
	DrugA string `json:"drug_a"`
	DrugB string `json:"drug_b"`
	Level string `json:"level"`
}

// Table is the loaded interaction dataset plus the column roles resolved at
// construction. It is read-only after NewTable returns, so it can be shared
// across concurrent readers without locking.
type Table struct {
	records []Record
	roles   ColumnRoles
}

// NewTable builds a Table from a dataset. Column roles are resolved once
// from the headers and every drug-name cell is normalized at load time, so
// queries compare pre-normalized values.
func NewTable(ds Dataset) (*Table, error) {
	headers := ds.Headers()
	roles := ResolveColumns(headers)

	width := len(headers)
	if roles.DrugA >= width || roles.DrugB >= width || roles.Level >= width {
		return nil, fmt.Errorf("%w: dataset has %d columns, need indices %d, %d and %d",
			ErrDataLoad, width, roles.DrugA, roles.DrugB, roles.Level)
	}

	rows := ds.Rows()
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) <= roles.DrugA || len(row) <= roles.DrugB || len(row) <= roles.Level {
			return nil, fmt.Errorf("%w: row %d has %d fields, need at least %d",
				ErrDataLoad, i+1, len(row), maxIndex(roles)+1)
		}
		records = append(records, Record{
			DrugA: Normalize(row[roles.DrugA]),
			DrugB: Normalize(row[roles.DrugB]),
			Level: row[roles.Level],
		})
	}

	return &Table{records: records, roles: roles}, nil
}

func maxIndex(roles ColumnRoles) int {
	max := roles.DrugA
	if roles.DrugB > max {
		max = roles.DrugB
	}
	if roles.Level > max {
		max = roles.Level
	}
	return max
}

// Normalize lowercases a drug name and trims surrounding whitespace.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Roles returns the column roles resolved at load time.
func (t *Table) Roles() ColumnRoles { return t.roles }

// Len returns the number of loaded records.
func (t *Table) Len() int { return len(t.records) }

// Records returns the loaded records in table order.
func (t *Table) Records() []Record { return t.records }

// ValidateDrugName checks a drug name syntactically. It rejects empty
// (including all-whitespace) input and purely numeric input such as "123" or
// "1.5, 2". Names mixing digits with other characters ("5-FU", "Drug2") are
// valid. It does not check that the drug exists in the table.
func ValidateDrugName(name string) (bool, string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false, "Drug name cannot be empty"
	}
	if numericOnlyRegex.MatchString(trimmed) {
		return false, "Invalid input: Drug name cannot be purely numeric"
	}
	return true, ""
}

// CheckInteraction looks up interactions between two drugs. The pair match
// is order-insensitive: a record matches whether the drugs appear as
// (A, B) or (B, A). The table is never mutated.
func (t *Table) CheckInteraction(drug1, drug2 string) QueryResult {
	if ok, reason := ValidateDrugName(drug1); !ok {
		return QueryResult{Status: StatusInvalidInput, Message: "Drug 1 - " + reason}
	}
	if ok, reason := ValidateDrugName(drug2); !ok {
		return QueryResult{Status: StatusInvalidInput, Message: "Drug 2 - " + reason}
	}

	d1 := Normalize(drug1)
	d2 := Normalize(drug2)

	if d1 == d2 {
		return QueryResult{
			Status:  StatusSameDrug,
			Message: "Cannot check interaction of a drug with itself",
		}
	}

	var matches []Record
	for _, rec := range t.records {
		if (rec.DrugA == d1 && rec.DrugB == d2) || (rec.DrugA == d2 && rec.DrugB == d1) {
			matches = append(matches, rec)
		}
	}

	if len(matches) > 0 {
		return QueryResult{
			Status:  StatusFound,
			Message: fmt.Sprintf("Interaction found between %s and %s", drug1, drug2),
			Records: matches,
		}
	}

	return QueryResult{
		Status:  StatusNotFound,
		Message: "No significant interaction found",
	}
}

// AllInteractionsForDrug lists every record in which the drug appears in
// either drug column, in original table order.
func (t *Table) AllInteractionsForDrug(drugName string) QueryResult {
	if ok, reason := ValidateDrugName(drugName); !ok {
		return QueryResult{Status: StatusInvalidInput, Message: reason}
	}

	drug := Normalize(drugName)

	var matches []Record
	for _, rec := range t.records {
		if rec.DrugA == drug || rec.DrugB == drug {
			matches = append(matches, rec)
		}
	}

	if len(matches) > 0 {
		return QueryResult{
			Status:  StatusFound,
			Message: fmt.Sprintf("Found %d interaction(s) for %s", len(matches), drugName),
			Records: matches,
		}
	}

	return QueryResult{
		Status:  StatusNotFound,
		Message: fmt.Sprintf("No interactions found for %s", drugName),
	}
}
