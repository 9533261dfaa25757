package types

// AnalyzeRequest is the request body for resume analysis. Both fields
// are plain text; binary-to-text conversion happens upstream.
type AnalyzeRequest struct {
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

// GenerateRoadmapRequest is the request body for roadmap generation.
type GenerateRoadmapRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
}

// RoadmapListItem is one row of a user's stored roadmaps, newest first.
type RoadmapListItem struct {
	ID        string         `json:"id"`
	Entries   []RoadmapEntry `json:"entries"`
	CreatedAt string         `json:"created_at"`
}
