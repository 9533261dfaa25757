package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/skillvize/skillvize/internal/server/middleware"
	"github.com/skillvize/skillvize/internal/types"
)

// RoadmapService is the roadmap orchestration surface. Implemented by
// *roadmap.Service; tests substitute a fake.
type RoadmapService interface {
	Generate(ctx context.Context, ownerID uuid.UUID, skills []string) ([]types.RoadmapEntry, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]types.RoadmapListItem, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}

// handleGenerateRoadmap synthesizes (or serves from the recency window)
// a roadmap for the authenticated user. Cached and fresh results are
// indistinguishable to the caller by shape.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.GenerateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.oracleTimeout)
	defer cancel()

	entries, err := s.roadmaps.Generate(ctx, ownerID, req.Skills)
	if err != nil {
		log.Printf("[roadmap] generation failed for owner %s: %v", ownerID, err)
		writeError(w, HTTPStatus(err), publicMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// handleListRoadmaps returns the authenticated user's roadmaps, newest
// first.
func (s *Server) handleListRoadmaps(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	items, err := s.roadmaps.List(r.Context(), ownerID)
	if err != nil {
		log.Printf("[roadmap] list failed for owner %s: %v", ownerID, err)
		writeError(w, HTTPStatus(err), publicMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// handleDeleteRoadmap deletes one of the authenticated user's roadmaps.
func (s *Server) handleDeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid roadmap id")
		return
	}

	if err := s.roadmaps.Delete(r.Context(), id, ownerID); err != nil {
		log.Printf("[roadmap] delete failed for owner %s: %v", ownerID, err)
		writeError(w, HTTPStatus(err), publicMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "roadmap deleted"})
}
