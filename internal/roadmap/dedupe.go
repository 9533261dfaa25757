package roadmap

import (
	"context"
	"encoding/json"
	"log"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/skillvize/skillvize/internal/db"
	"github.com/skillvize/skillvize/internal/skills"
	"github.com/skillvize/skillvize/internal/types"
)

// LatestRoadmapSource reads the most recently persisted roadmap for an
// owner. Implemented by *db.DB; tests substitute a fake.
type LatestRoadmapSource interface {
	LatestRoadmapByOwner(ctx context.Context, ownerID uuid.UUID) (*db.RoadmapRecord, error)
}

// Guard prevents redundant synthesis calls for repeated identical
// requests within a recency window. It is a derived check over persisted
// state, not an independent cache, so it cannot drift from stored truth.
//
// Only the most recent roadmap is compared. This bounds the lookup to
// O(1): a user alternating between two skill sets inside the window will
// re-synthesize, which is an accepted cost.
type Guard struct {
	source LatestRoadmapSource
	window time.Duration
}

// NewGuard creates a Guard with the given recency window. The window is
// a heuristic against double-submits and client retries, not a
// correctness guarantee.
func NewGuard(source LatestRoadmapSource, window time.Duration) *Guard {
	return &Guard{source: source, window: window}
}

// CachedRoadmap returns the previously persisted entries when the
// owner's most recent roadmap is inside the recency window and covers
// exactly the requested skill set (order- and case-insensitive full-set
// equality). Returns nil on any miss. Failures reading or decoding the
// stored record are logged and treated as misses, never as request
// failures.
func (g *Guard) CachedRoadmap(ctx context.Context, ownerID uuid.UUID, requestedSkills []string, now time.Time) []types.RoadmapEntry {
	record, err := g.source.LatestRoadmapByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("[dedupe] latest roadmap lookup failed for owner %s: %v", ownerID, err)
		return nil
	}
	if record == nil {
		return nil
	}

	if now.Sub(record.CreatedAt) >= g.window {
		return nil
	}

	var entries []types.RoadmapEntry
	if err := json.Unmarshal(record.Entries, &entries); err != nil {
		log.Printf("[dedupe] stored roadmap %s is not decodable, treating as miss: %v", record.ID, err)
		return nil
	}

	stored := make([]string, 0, len(entries))
	for _, entry := range entries {
		stored = append(stored, entry.Skill)
	}

	if !sameSkillSet(stored, requestedSkills) {
		return nil
	}

	log.Printf("[dedupe] serving roadmap %s from recency window for owner %s", record.ID, ownerID)
	return entries
}

// sameSkillSet compares two skill sets after normalizing and sorting.
// Full-set equality only; subsets and supersets are misses.
func sameSkillSet(a, b []string) bool {
	na := skills.NormalizeAll(a)
	nb := skills.NormalizeAll(b)
	slices.Sort(na)
	slices.Sort(nb)
	return slices.Equal(na, nb)
}
