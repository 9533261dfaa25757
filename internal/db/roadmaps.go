package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/skillvize/skillvize/internal/types"
)

// InsertRoadmap appends a new roadmap for the owner and returns its ID.
func (db *DB) InsertRoadmap(ctx context.Context, ownerID uuid.UUID, entries []types.RoadmapEntry) (uuid.UUID, error) {
	encoded, err := json.Marshal(entries)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal roadmap entries: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO roadmaps (user_id, entries) VALUES ($1, $2) RETURNING id`,
		ownerID, encoded,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert roadmap: %w", err)
	}
	return id, nil
}

// LatestRoadmapByOwner returns the owner's most recently created
// roadmap, or nil when they have none.
func (db *DB) LatestRoadmapByOwner(ctx context.Context, ownerID uuid.UUID) (*RoadmapRecord, error) {
	record := RoadmapRecord{OwnerID: ownerID}
	err := db.pool.QueryRow(ctx,
		`SELECT id, entries, created_at FROM roadmaps
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`,
		ownerID,
	).Scan(&record.ID, &record.Entries, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest roadmap: %w", err)
	}
	return &record, nil
}

// ListRoadmapsByOwner returns all of the owner's roadmaps, newest first.
func (db *DB) ListRoadmapsByOwner(ctx context.Context, ownerID uuid.UUID) ([]RoadmapRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, entries, created_at FROM roadmaps
		 WHERE user_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list roadmaps: %w", err)
	}
	defer rows.Close()

	var records []RoadmapRecord
	for rows.Next() {
		record := RoadmapRecord{OwnerID: ownerID}
		if err := rows.Scan(&record.ID, &record.Entries, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan roadmap row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roadmap rows: %w", err)
	}

	return records, nil
}

// DeleteRoadmapByIDAndOwner deletes a roadmap only when it belongs to
// the given owner. Returns the number of rows removed; 0 means
// not-found-or-not-owned, which callers must treat identically.
func (db *DB) DeleteRoadmapByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (int64, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM roadmaps WHERE id = $1 AND user_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete roadmap: %w", err)
	}
	return tag.RowsAffected(), nil
}
