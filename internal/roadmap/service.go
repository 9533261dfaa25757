package roadmap

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/skillvize/skillvize/internal/db"
	"github.com/skillvize/skillvize/internal/types"
)

// Store is the persistence boundary for roadmaps. Rows are owned
// exclusively by their owner; append-only except for explicit deletion.
type Store interface {
	LatestRoadmapSource
	InsertRoadmap(ctx context.Context, ownerID uuid.UUID, entries []types.RoadmapEntry) (uuid.UUID, error)
	ListRoadmapsByOwner(ctx context.Context, ownerID uuid.UUID) ([]db.RoadmapRecord, error)
	DeleteRoadmapByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error)
}

// Service orchestrates roadmap generation: duplicate check, synthesis,
// persistence, retrieval, and deletion.
//
// Two racing requests for the same owner may both miss the guard and
// both synthesize. That is accepted: synthesis is read/append-only, so
// the worst case is a duplicate row, not corruption. A lock here would
// serialize an expensive call for a rare, harmless race.
type Service struct {
	synthesizer *Synthesizer
	guard       *Guard
	store       Store
}

// NewService wires the generation pipeline together.
func NewService(synthesizer *Synthesizer, guard *Guard, store Store) *Service {
	return &Service{synthesizer: synthesizer, guard: guard, store: store}
}

// Generate returns roadmap entries for the requested skills, serving
// from the recency window when the owner just asked for the identical
// set. Freshly synthesized entries are only returned after the store
// confirms the write.
func (s *Service) Generate(ctx context.Context, ownerID uuid.UUID, requestedSkills []string) ([]types.RoadmapEntry, error) {
	if len(requestedSkills) == 0 {
		return nil, ErrEmptySkillSet
	}

	if cached := s.guard.CachedRoadmap(ctx, ownerID, requestedSkills, time.Now()); cached != nil {
		return cached, nil
	}

	entries, err := s.synthesizer.Synthesize(ctx, requestedSkills)
	if err != nil {
		return nil, err
	}

	id, err := s.store.InsertRoadmap(ctx, ownerID, entries)
	if err != nil {
		return nil, &StoreError{Op: "insert", Cause: err}
	}

	log.Printf("[roadmap] saved roadmap %s with %d entries for owner %s", id, len(entries), ownerID)
	return entries, nil
}

// List returns the owner's stored roadmaps, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]types.RoadmapListItem, error) {
	records, err := s.store.ListRoadmapsByOwner(ctx, ownerID)
	if err != nil {
		return nil, &StoreError{Op: "list", Cause: err}
	}

	items := make([]types.RoadmapListItem, 0, len(records))
	for _, record := range records {
		item, err := record.ToListItem()
		if err != nil {
			// A row we cannot decode is logged and skipped rather than
			// failing the whole listing.
			log.Printf("[roadmap] skipping undecodable roadmap %s: %v", record.ID, err)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// Delete removes one of the owner's roadmaps. Deleting a roadmap that
// does not exist or belongs to someone else yields the same
// ErrRoadmapNotFound.
func (s *Service) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	changed, err := s.store.DeleteRoadmapByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		return &StoreError{Op: "delete", Cause: err}
	}
	if changed == 0 {
		return ErrRoadmapNotFound
	}
	return nil
}
