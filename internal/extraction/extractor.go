// Package extraction coerces free-form oracle completions into validated
// structured payloads. It is a pure, two-phase decoder: cheap textual
// cleanup followed by strict schema validation. It never returns partial
// or guessed data, and it never retries the oracle; retry policy belongs
// to the caller.
package extraction

import (
	"encoding/json"
	"regexp"

	"github.com/xeipuuv/gojsonschema"

	"github.com/skillvize/skillvize/internal/llm"
	"github.com/skillvize/skillvize/internal/types"
)

// Shape tags the expected top-level structure of a completion payload.
type Shape string

const (
	// ShapeSkillsObject expects an object with a "skills" string array.
	ShapeSkillsObject Shape = "skills-object"
	// ShapeRoadmapArray expects an array of per-skill roadmap objects.
	ShapeRoadmapArray Shape = "roadmap-array"
)

// diagnosticLimit bounds how much raw completion text is carried inside
// errors and logs.
const diagnosticLimit = 500

// Non-greedy payload locators. Trailing commentary after the JSON is
// ignored because the match stops at the smallest plausible fragment.
var (
	skillsObjectPattern = regexp.MustCompile(`(?s)\{\s*"skills"\s*:\s*\[.*?\]\s*\}`)
	roadmapArrayPattern = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
)

const skillsSchemaDoc = `{
	"type": "object",
	"required": ["skills"],
	"properties": {
		"skills": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string"}
		}
	}
}`

const roadmapSchemaDoc = `{
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["skill", "steps", "youtube_keywords", "coursera_keywords"],
		"properties": {
			"skill": {"type": "string"},
			"steps": {"type": "array", "items": {"type": "string"}},
			"youtube_keywords": {"type": "array", "items": {"type": "string"}},
			"coursera_keywords": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

var (
	skillsSchema  = mustCompileSchema(skillsSchemaDoc)
	roadmapSchema = mustCompileSchema(roadmapSchemaDoc)
)

func mustCompileSchema(doc string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(doc))
	if err != nil {
		panic("invalid embedded schema: " + err.Error())
	}
	return schema
}

// ParseSkills recovers the skills payload embedded in a resume-analysis
// completion. Absence of a valid payload is an error, never an empty
// skill list.
func ParseSkills(raw string) (*types.ExtractedSkills, error) {
	fragment, err := locate(raw, ShapeSkillsObject, skillsObjectPattern)
	if err != nil {
		return nil, err
	}

	if err := validate(fragment, ShapeSkillsObject, skillsSchema); err != nil {
		return nil, err
	}

	var payload types.ExtractedSkills
	if err := json.Unmarshal([]byte(fragment), &payload); err != nil {
		return nil, &MalformedJSON{Shape: ShapeSkillsObject, Fragment: truncate(fragment), Cause: err}
	}
	return &payload, nil
}

// ParseRoadmap recovers the roadmap array embedded in a synthesis
// completion. Every element is guaranteed to carry a skill name, steps,
// and both keyword sequences.
func ParseRoadmap(raw string) ([]types.RoadmapSketch, error) {
	fragment, err := locate(raw, ShapeRoadmapArray, roadmapArrayPattern)
	if err != nil {
		return nil, err
	}

	if err := validate(fragment, ShapeRoadmapArray, roadmapSchema); err != nil {
		return nil, err
	}

	var sketches []types.RoadmapSketch
	if err := json.Unmarshal([]byte(fragment), &sketches); err != nil {
		return nil, &MalformedJSON{Shape: ShapeRoadmapArray, Fragment: truncate(fragment), Cause: err}
	}
	return sketches, nil
}

// locate strips code fences and finds the smallest fragment matching the
// shape's pattern. The fragment must then be syntactically valid JSON.
func locate(raw string, shape Shape, pattern *regexp.Regexp) (string, error) {
	cleaned := llm.CleanJSONBlock(raw)

	fragment := pattern.FindString(cleaned)
	if fragment == "" {
		return "", &NoPayloadFound{Shape: shape, Prefix: truncate(raw)}
	}

	if !json.Valid([]byte(fragment)) {
		var probe any
		err := json.Unmarshal([]byte(fragment), &probe)
		return "", &MalformedJSON{Shape: shape, Fragment: truncate(fragment), Cause: err}
	}

	return fragment, nil
}

// validate checks a syntactically valid fragment against the shape's
// schema.
func validate(fragment string, shape Shape, schema *gojsonschema.Schema) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(fragment))
	if err != nil {
		return &MalformedJSON{Shape: shape, Fragment: truncate(fragment), Cause: err}
	}

	if !result.Valid() {
		violations := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			violations = append(violations, desc.String())
		}
		return &SchemaMismatch{Shape: shape, Violations: violations}
	}

	return nil
}

func truncate(s string) string {
	if len(s) > diagnosticLimit {
		return s[:diagnosticLimit]
	}
	return s
}
