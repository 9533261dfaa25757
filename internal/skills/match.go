package skills

import (
	"errors"
	"math"
	"strings"

	"github.com/skillvize/skillvize/internal/types"
)

// ErrEmptyJobSkills is returned when scoring is requested against an
// empty job skill set; the score is undefined in that case and must not
// be fabricated.
var ErrEmptyJobSkills = errors.New("job description yielded no skills to score against")

// Score computes the overlap between the job description's skill set and
// the resume's skill set. A job skill counts as matched when it is a
// substring of at least one resume skill. Containment is deliberately
// asymmetric and permissive: "react" should match a resume entry
// "react.js" rather than demanding exact equality. This trades precision
// for recall against phrasing variance in extracted text.
//
// Both inputs are expected to be normalized already.
func Score(jobSkills, resumeSkills []string) (*types.MatchResult, error) {
	if len(jobSkills) == 0 {
		return nil, ErrEmptyJobSkills
	}

	matched := make([]string, 0, len(jobSkills))
	missing := make([]string, 0, len(jobSkills))

	for _, job := range jobSkills {
		if containedInAny(job, resumeSkills) {
			matched = append(matched, job)
		} else {
			missing = append(missing, job)
		}
	}

	score := int(math.Round(100 * float64(len(matched)) / float64(len(jobSkills))))

	return &types.MatchResult{
		Score:        score,
		Matched:      matched,
		Missing:      missing,
		ResumeSkills: resumeSkills,
	}, nil
}

func containedInAny(needle string, haystack []string) bool {
	for _, h := range haystack {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}
