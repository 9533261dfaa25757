package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "React", "react"},
		{"trims whitespace", "  Node.js  ", "node.js"},
		{"already normalized", "kubernetes", "kubernetes"},
		{"mixed case with spaces", "  Distributed Systems ", "distributed systems"},
		{"empty string", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{"React", "  Node.js ", "GO", "distributed systems", "", " C++ "}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(s)) must equal normalize(s) for %q", s)
	}
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"Go", "  ", "Rust ", ""})
	assert.Equal(t, []string{"go", "rust"}, got)
}

func TestTokenizeJobDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "comma separated",
			input:    "React, Node.js, PostgreSQL",
			expected: []string{"react", "node.js", "postgresql"},
		},
		{
			name:     "newline separated",
			input:    "Go\nDocker\nKubernetes",
			expected: []string{"go", "docker", "kubernetes"},
		},
		{
			name:     "hyphen bullets",
			input:    "- AWS\n- Terraform",
			expected: []string{"aws", "terraform"},
		},
		{
			name:     "mixed separators with empties",
			input:    "Go,, \n- Rust,",
			expected: []string{"go", "rust"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeJobDescription(tt.input))
		})
	}
}
