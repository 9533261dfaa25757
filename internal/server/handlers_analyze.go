package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/skillvize/skillvize/internal/types"
)

// Analyzer runs the resume-vs-job analysis pipeline. Implemented by
// *analysis.Analyzer; tests substitute a fake.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText, jobDescription string) (*types.MatchResult, error)
}

// handleAnalyze scores a resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	// The oracle call inside Analyze is the only blocking step; bound it
	// so a hung completion cannot pin the request forever.
	ctx, cancel := context.WithTimeout(r.Context(), s.oracleTimeout)
	defer cancel()

	result, err := s.analyzer.Analyze(ctx, req.ResumeText, req.JobDescription)
	if err != nil {
		log.Printf("[analyze] analysis failed: %v", err)
		writeError(w, HTTPStatus(err), publicMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, result)
}
