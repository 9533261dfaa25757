package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name         string
		jobSkills    []string
		resumeSkills []string
		wantScore    int
		wantMatched  []string
		wantMissing  []string
	}{
		{
			name:         "partial overlap with substring containment",
			jobSkills:    []string{"react", "node.js"},
			resumeSkills: []string{"react", "express"},
			wantScore:    50,
			wantMatched:  []string{"react"},
			wantMissing:  []string{"node.js"},
		},
		{
			name:         "job skill contained in longer resume skill",
			jobSkills:    []string{"react"},
			resumeSkills: []string{"react.js"},
			wantScore:    100,
			wantMatched:  []string{"react"},
			wantMissing:  []string{},
		},
		{
			name:         "containment is asymmetric",
			jobSkills:    []string{"react.js"},
			resumeSkills: []string{"react"},
			wantScore:    0,
			wantMatched:  []string{},
			wantMissing:  []string{"react.js"},
		},
		{
			name:         "no overlap",
			jobSkills:    []string{"go", "rust"},
			resumeSkills: []string{"python"},
			wantScore:    0,
			wantMatched:  []string{},
			wantMissing:  []string{"go", "rust"},
		},
		{
			name:         "full overlap",
			jobSkills:    []string{"go", "docker"},
			resumeSkills: []string{"golang", "docker compose"},
			wantScore:    100,
			wantMatched:  []string{"go", "docker"},
			wantMissing:  []string{},
		},
		{
			name:         "rounds to nearest integer",
			jobSkills:    []string{"a", "b", "c"},
			resumeSkills: []string{"a"},
			wantScore:    33,
			wantMatched:  []string{"a"},
			wantMissing:  []string{"b", "c"},
		},
		{
			name:         "empty resume skill set",
			jobSkills:    []string{"go"},
			resumeSkills: []string{},
			wantScore:    0,
			wantMatched:  []string{},
			wantMissing:  []string{"go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Score(tt.jobSkills, tt.resumeSkills)
			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantMatched, result.Matched)
			assert.Equal(t, tt.wantMissing, result.Missing)
			assert.Equal(t, tt.resumeSkills, result.ResumeSkills)
		})
	}
}

func TestScoreEmptyJobSkills(t *testing.T) {
	result, err := Score([]string{}, []string{"go"})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyJobSkills)

	result, err = Score(nil, nil)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptyJobSkills)
}
