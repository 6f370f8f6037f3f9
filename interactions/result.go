package interactions

// Status tags a QueryResult variant. The wire values match the historical
// checker output so existing consumers can keep switching on them.
type Status string

const (
	// StatusFound means at least one interaction record matched.
	StatusFound Status = "found"
	// StatusNotFound means the query was valid but nothing matched.
	StatusNotFound Status = "not_found"
	// StatusInvalidInput means a drug name failed syntactic validation.
	StatusInvalidInput Status = "invalid_input"
	// StatusSameDrug means both names normalize to the same drug.
	StatusSameDrug Status = "error"
)

// QueryResult is the tagged result of a lookup. Records is only populated
// for StatusFound and preserves the table's original row order.
type QueryResult struct {
	Status  Status   `json:"status"`
	Message string   `json:"message"`
	Records []Record `json:"data,omitempty"`
}
