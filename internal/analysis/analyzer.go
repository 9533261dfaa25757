// Package analysis orchestrates the resume-vs-job-description pipeline:
// oracle extraction of resume skills, normalization, and overlap scoring.
package analysis

import (
	"context"
	"fmt"

	"github.com/skillvize/skillvize/internal/extraction"
	"github.com/skillvize/skillvize/internal/llm"
	"github.com/skillvize/skillvize/internal/prompts"
	"github.com/skillvize/skillvize/internal/skills"
	"github.com/skillvize/skillvize/internal/types"
)

// extractionTemperature keeps the oracle close to deterministic for a
// pure extraction prompt.
const extractionTemperature = 0.1

// Analyzer runs the analyze pipeline. Parsing and scoring are
// synchronous and CPU-bound; the oracle call is the only suspension
// point, bounded by the caller's context.
type Analyzer struct {
	client llm.Client
}

// NewAnalyzer creates an Analyzer backed by the given oracle client.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{client: client}
}

// Analyze extracts the resume's skill set via the oracle, tokenizes the
// job description, and scores the overlap. The job description is
// tokenized first: if it yields no skills the request is rejected
// without spending an oracle call.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobDescription string) (*types.MatchResult, error) {
	jobSkills := skills.TokenizeJobDescription(jobDescription)
	if len(jobSkills) == 0 {
		return nil, skills.ErrEmptyJobSkills
	}

	prompt := buildExtractionPrompt(resumeText)

	completion, err := a.client.GenerateContent(ctx, prompt, llm.TierLite, extractionTemperature)
	if err != nil {
		return nil, &llm.OracleError{Cause: err}
	}

	payload, err := extraction.ParseSkills(completion)
	if err != nil {
		return nil, fmt.Errorf("skill extraction failed: %w", err)
	}

	resumeSkills := skills.NormalizeAll(payload.Skills)

	return skills.Score(jobSkills, resumeSkills)
}

func buildExtractionPrompt(resumeText string) string {
	template := prompts.MustGet("analysis.json", "extract-resume-skills")
	return prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})
}
