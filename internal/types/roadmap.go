// Package types defines the shared data structures exchanged between the
// extraction, matching, roadmap, and server layers.
package types

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedSkills is the structured payload recovered from a resume
// analysis completion. Skills is never empty on a successful extraction;
// an absent or empty payload is reported as an extraction error instead.
type ExtractedSkills struct {
	Skills []string `json:"skills"`
}

// RoadmapSketch is one element of the raw roadmap array produced by the
// model, before resource links are derived. The keyword slices are search
// terms, not URLs.
type RoadmapSketch struct {
	Skill            string   `json:"skill"`
	Steps            []string `json:"steps"`
	YoutubeKeywords  []string `json:"youtube_keywords"`
	CourseraKeywords []string `json:"coursera_keywords"`
}

// RoadmapEntry is the persisted, client-facing form of a single skill
// roadmap: ordered learning steps plus derived resource search links.
type RoadmapEntry struct {
	Skill         string   `json:"skill"`
	Steps         []string `json:"steps"`
	YoutubeLinks  []string `json:"youtube"`
	CourseraLinks []string `json:"coursera"`
}

// Roadmap is an immutable persisted roadmap owned by a single user.
// It is created on successful synthesis and only ever deleted, never
// updated in place.
type Roadmap struct {
	ID        uuid.UUID      `json:"id"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	Entries   []RoadmapEntry `json:"entries"`
	CreatedAt time.Time      `json:"created_at"`
}

// MatchResult reports the overlap between a job description's skill set
// and a resume's skill set. Score is a rounded percentage in [0, 100] and
// is only defined for a non-empty job skill set.
type MatchResult struct {
	Score        int      `json:"match_score"`
	Matched      []string `json:"matched_skills"`
	Missing      []string `json:"missing_skills"`
	ResumeSkills []string `json:"resume_skills"`
}
