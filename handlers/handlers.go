// Package handlers provides HTTP request handlers for the MED-SAFE API
// endpoints. It includes handlers for interaction lookups, dataset paging,
// health checks, and response formatting with proper input validation and
// error handling.
package handlers

import (
	"compress/gzip"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ericjunior52/MED-SAFE/interactions"
	"github.com/ericjunior52/MED-SAFE/interfaces"
	"github.com/ericjunior52/MED-SAFE/logging"
	"github.com/ericjunior52/MED-SAFE/metrics"
	"github.com/go-chi/chi/v5"
)

// Minimum response size to consider compression (1KB)
const compressionThreshold = 1024

// RespondWithJSON writes a JSON response, gzip-compressed when the payload
// is large enough and the client accepts it
func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))

	shouldCompress := len(data) >= compressionThreshold &&
		strings.Contains(strings.ToLower(r.Header.Get("Accept-Encoding")), "gzip")

	if shouldCompress {
		w.Header().Set("Content-Encoding", "gzip")
		w.WriteHeader(code)
		gz := gzip.NewWriter(w)
		defer gz.Close()
		if _, err := gz.Write(data); err != nil {
			logging.Error("Failed to write compressed response", "error", err)
		}
		return
	}

	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		logging.Error("Failed to write response", "error", err)
	}
}

// RespondWithError writes a JSON error response
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	jsonResponse, err := json.Marshal(map[string]string{"error": msg})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Error responses are small, don't compress them
	if _, err := w.Write(jsonResponse); err != nil {
		logging.Error("Failed to write error response", "error", err)
	}
}

// statusCodeFor maps a lookup status to an HTTP status code
func statusCodeFor(status interactions.Status) int {
	switch status {
	case interactions.StatusFound:
		return http.StatusOK
	case interactions.StatusNotFound:
		return http.StatusNotFound
	default:
		// invalid input and same-drug errors are client errors
		return http.StatusBadRequest
	}
}

// respondWithResult records the lookup outcome and writes the query result
func respondWithResult(w http.ResponseWriter, r *http.Request, result interactions.QueryResult) {
	metrics.ObserveLookup(string(result.Status))
	RespondWithJSON(w, r, statusCodeFor(result.Status), result)
}

// CheckInteraction answers the pairwise lookup: does drug1 interact with
// drug2. The response body is always the full query result
func CheckInteraction(store interfaces.TableStore, validator interfaces.InputValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drug1 := chi.URLParam(r, "drug1")
		drug2 := chi.URLParam(r, "drug2")

		if err := validator.ValidateInput(drug1); err != nil {
			logging.Warn("Rejected drug1 input", "error", err)
			RespondWithError(w, http.StatusBadRequest, "Invalid drug name")
			return
		}
		if err := validator.ValidateInput(drug2); err != nil {
			logging.Warn("Rejected drug2 input", "error", err)
			RespondWithError(w, http.StatusBadRequest, "Invalid drug name")
			return
		}

		respondWithResult(w, r, store.GetTable().CheckInteraction(drug1, drug2))
	}
}

// DrugInteractions lists every interaction involving a single drug
func DrugInteractions(store interfaces.TableStore, validator interfaces.InputValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		drug := chi.URLParam(r, "drug")

		if err := validator.ValidateInput(drug); err != nil {
			logging.Warn("Rejected drug input", "error", err)
			RespondWithError(w, http.StatusBadRequest, "Invalid drug name")
			return
		}

		respondWithResult(w, r, store.GetTable().AllInteractionsForDrug(drug))
	}
}

// ServeAllRecords returns the full interaction dataset
func ServeAllRecords(store interfaces.TableStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records := store.GetTable().Records()
		RespondWithJSON(w, r, http.StatusOK, records)
	}
}

// ServePagedRecords returns a page of the interaction dataset
func ServePagedRecords(store interfaces.TableStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pageNumber := chi.URLParam(r, "pageNumber")
		page, err := strconv.Atoi(pageNumber)
		if err != nil || page < 1 {
			logging.Warn("Unusual user input", "pageNumber", pageNumber)
			RespondWithError(w, http.StatusBadRequest, "Invalid page number")
			return
		}

		records := store.GetTable().Records()
		pageSize := 10
		start := (page - 1) * pageSize
		end := start + pageSize

		if start >= len(records) {
			RespondWithError(w, http.StatusNotFound, "Page not found")
			return
		}

		if end > len(records) {
			end = len(records)
		}

		totalItems := len(records)
		maxPage := (totalItems + pageSize - 1) / pageSize

		response := map[string]interface{}{
			"data":       records[start:end],
			"page":       page,
			"pageSize":   pageSize,
			"totalItems": totalItems,
			"maxPage":    maxPage,
		}

		RespondWithJSON(w, r, http.StatusOK, response)
	}
}

// HealthCheck returns server health information
func HealthCheck(checker interfaces.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, details, httpStatus := checker.HealthCheck()

		response := map[string]interface{}{
			"status": status,
			"data":   details,
		}

		RespondWithJSON(w, r, httpStatus, response)
	}
}
