package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skillvize/skillvize/internal/types"
)

// User is a stored account row, including the password hash. Only the
// auth path reads this type; everything above it uses types.User.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RoadmapRecord is a stored roadmap row. Entries is the canonical JSON
// encoding of []types.RoadmapEntry, kept raw so corrupt rows surface at
// decode time in the caller rather than poisoning store reads.
type RoadmapRecord struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Entries   []byte
	CreatedAt time.Time
}

// ToListItem decodes the record into its client-facing form.
func (r *RoadmapRecord) ToListItem() (types.RoadmapListItem, error) {
	var entries []types.RoadmapEntry
	if err := json.Unmarshal(r.Entries, &entries); err != nil {
		return types.RoadmapListItem{}, fmt.Errorf("failed to decode roadmap %s entries: %w", r.ID, err)
	}

	return types.RoadmapListItem{
		ID:        r.ID.String(),
		Entries:   entries,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}, nil
}
