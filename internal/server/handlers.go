package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taxpolicylab/captax/internal/modules/charts"
	"github.com/taxpolicylab/captax/internal/modules/reporting"
)

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "captax",
	})
}

// handleChart renders the METR bar chart for the latest run
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	table, ok := s.latestTable(w)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.Render(table, w); err != nil {
		s.log.Error().Err(err).Msg("Failed to render chart")
		s.writeError(w, http.StatusInternalServerError, "failed to render chart")
	}
}

// handleResults returns the latest run's long-form table
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	run, err := s.repo.LatestRun()
	if err != nil {
		s.handleRepoError(w, err)
		return
	}

	table, err := s.repo.TableForRun(run.ID)
	if err != nil {
		s.handleRepoError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"run":  run,
		"rows": table.Rows,
	})
}

// handleSummary returns cross-asset statistics per policy and metric
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	table, ok := s.latestTable(w)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary": table.Summary(),
	})
}

// latestTable loads the latest run's table, writing the error response
// itself when that fails.
func (s *Server) latestTable(w http.ResponseWriter) (reporting.Table, bool) {
	run, err := s.repo.LatestRun()
	if err != nil {
		s.handleRepoError(w, err)
		return reporting.Table{}, false
	}

	table, err := s.repo.TableForRun(run.ID)
	if err != nil {
		s.handleRepoError(w, err)
		return reporting.Table{}, false
	}
	return table, true
}

func (s *Server) handleRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrNoRuns) {
		s.writeError(w, http.StatusNotFound, "no analysis runs recorded yet")
		return
	}
	s.log.Error().Err(err).Msg("Failed to load results")
	s.writeError(w, http.StatusInternalServerError, "failed to load results")
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{
		"error": message,
	})
}
