package interactions

import "strings"

// Positional fallbacks used when no header matches the role heuristics.
// These mirror the fixed layout of the historical drug_interaction.csv
// (id, Drug_A, ..., Drug_B, Level) and must not be changed: callers feed
// datasets without descriptive headers and rely on these exact indices.
const (
	fallbackDrugAIndex = 1
	fallbackDrugBIndex = 3
	fallbackLevelIndex = 4
)

// ColumnRoles holds the resolved column index for each record field.
type ColumnRoles struct {
	DrugA int
	DrugB int
	Level int
}

// ResolveColumns inspects the header list and picks a column for each role.
// A drug column is the first header containing both "drug" and the side
// letter (case-insensitive); the level column is the first header containing
// "level" or "severity". Roles with no matching header fall back to fixed
// positional indices.
func ResolveColumns(headers []string) ColumnRoles {
	roles := ColumnRoles{
		DrugA: fallbackDrugAIndex,
		DrugB: fallbackDrugBIndex,
		Level: fallbackLevelIndex,
	}

	foundA, foundB, foundLevel := false, false, false

	for i, header := range headers {
		h := strings.ToLower(header)

		if !foundA && strings.Contains(h, "drug") && strings.Contains(h, "a") {
			roles.DrugA = i
			foundA = true
		}
		if !foundB && strings.Contains(h, "drug") && strings.Contains(h, "b") {
			roles.DrugB = i
			foundB = true
		}
		if !foundLevel && (strings.Contains(h, "level") || strings.Contains(h, "severity")) {
			roles.Level = i
			foundLevel = true
		}
	}

	return roles
}
