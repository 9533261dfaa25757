// Package roadmap synthesizes, deduplicates, and persists per-skill
// learning roadmaps.
package roadmap

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/skillvize/skillvize/internal/extraction"
	"github.com/skillvize/skillvize/internal/llm"
	"github.com/skillvize/skillvize/internal/prompts"
	"github.com/skillvize/skillvize/internal/skills"
	"github.com/skillvize/skillvize/internal/types"
)

// synthesisTemperature biases the oracle toward covering every requested
// skill while leaving room for varied step content.
const synthesisTemperature = 0.2

const (
	youtubeSearchURL  = "https://www.youtube.com/results?search_query="
	courseraSearchURL = "https://www.coursera.org/search?query="
)

// Synthesizer turns a skill set into roadmap entries via a single oracle
// call. It performs no persistence; the caller owns what happens to the
// result.
type Synthesizer struct {
	client llm.Client
}

// NewSynthesizer creates a Synthesizer backed by the given oracle client.
func NewSynthesizer(client llm.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Synthesize generates one roadmap entry per requested skill. The prompt
// states the expected cardinality, but the oracle provides no mechanical
// guarantee: a parsed array of a different length is surfaced in the
// logs and the valid entries are returned anyway.
func (s *Synthesizer) Synthesize(ctx context.Context, skillSet []string) ([]types.RoadmapEntry, error) {
	if len(skillSet) == 0 {
		return nil, ErrEmptySkillSet
	}

	prompt := buildSynthesisPrompt(skillSet)

	completion, err := s.client.GenerateContent(ctx, prompt, llm.TierStandard, synthesisTemperature)
	if err != nil {
		return nil, &llm.OracleError{Cause: err}
	}

	sketches, err := extraction.ParseRoadmap(completion)
	if err != nil {
		return nil, fmt.Errorf("roadmap extraction failed: %w", err)
	}

	reportDrift(skillSet, sketches)

	entries := make([]types.RoadmapEntry, 0, len(sketches))
	for _, sketch := range sketches {
		entries = append(entries, types.RoadmapEntry{
			Skill:         sketch.Skill,
			Steps:         sketch.Steps,
			YoutubeLinks:  searchLinks(youtubeSearchURL, sketch.YoutubeKeywords),
			CourseraLinks: searchLinks(courseraSearchURL, sketch.CourseraKeywords),
		})
	}

	return entries, nil
}

func buildSynthesisPrompt(skillSet []string) string {
	template := prompts.MustGet("roadmap.json", "synthesize-roadmaps")
	return prompts.Format(template, map[string]string{
		"Skills": strings.Join(skillSet, ", "),
		"Count":  strconv.Itoa(len(skillSet)),
	})
}

// reportDrift logs cardinality mismatches and skill names the oracle
// produced that were never requested. Both are non-fatal but must stay
// observable so operators can tune prompting. No reconciliation is
// attempted: guessing which requested skill an off-script entry belongs
// to would be fabrication.
func reportDrift(requested []string, sketches []types.RoadmapSketch) {
	received := make([]string, 0, len(sketches))
	for _, sketch := range sketches {
		received = append(received, sketch.Skill)
	}

	if len(sketches) != len(requested) {
		log.Printf("[roadmap] cardinality mismatch: requested %d skills, parsed %d entries (requested=%v received=%v)",
			len(requested), len(sketches), requested, received)
	}

	wanted := make(map[string]bool, len(requested))
	for _, skill := range requested {
		wanted[skills.Normalize(skill)] = true
	}
	for _, name := range received {
		if !wanted[skills.Normalize(name)] {
			log.Printf("[roadmap] skill drift: oracle produced entry for unrequested skill %q", name)
		}
	}
}

// searchLinks maps each keyword through a search-URL template with
// percent-encoding. Deterministic; never an oracle call.
func searchLinks(base string, keywords []string) []string {
	links := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		links = append(links, base+url.QueryEscape(keyword))
	}
	return links
}
