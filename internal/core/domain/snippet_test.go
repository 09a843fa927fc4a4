package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet_Validate_Valid(t *testing.T) {
	s := Snippet{Title: "Commit progress", Content: "git add -A && git commit"}

	err := s.Validate(DefaultLimits())

	assert.NoError(t, err)
}

func TestSnippet_Validate_EmptyTitle(t *testing.T) {
	s := Snippet{Content: "some content"}

	err := s.Validate(DefaultLimits())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSnippet)
}

func TestSnippet_Validate_EmptyContent(t *testing.T) {
	s := Snippet{Title: "a title"}

	err := s.Validate(DefaultLimits())

	assert.ErrorIs(t, err, ErrInvalidSnippet)
}

func TestSnippet_Validate_TitleTooLong(t *testing.T) {
	s := Snippet{
		Title:   strings.Repeat("x", 201),
		Content: "content",
	}

	err := s.Validate(DefaultLimits())

	assert.ErrorIs(t, err, ErrInvalidSnippet)
}

func TestSnippet_Validate_ContentTooLong(t *testing.T) {
	s := Snippet{
		Title:   "title",
		Content: strings.Repeat("x", 10001),
	}

	err := s.Validate(DefaultLimits())

	assert.ErrorIs(t, err, ErrInvalidSnippet)
}

func TestSnippet_Validate_ZeroLimitsDisableLengthChecks(t *testing.T) {
	s := Snippet{
		Title:   strings.Repeat("x", 5000),
		Content: strings.Repeat("y", 50000),
	}

	err := s.Validate(Limits{})

	assert.NoError(t, err)
}

func TestSnippet_Size(t *testing.T) {
	s := Snippet{Title: "t", Content: "hello"}

	assert.Equal(t, 5, s.Size())
}

func TestSearchScope_String(t *testing.T) {
	assert.Equal(t, "all", ScopeAll.String())
	assert.Equal(t, "title-only", ScopeTitleOnly.String())
	assert.Equal(t, "content-only", ScopeContentOnly.String())
}

func TestDefaultTuning_TitleOutweighsContent(t *testing.T) {
	tuning := DefaultTuning()

	assert.Greater(t, tuning.TitleWeight, tuning.ContentWeight)
}

func TestDefaultTuning_TierOrdering(t *testing.T) {
	tuning := DefaultTuning()

	assert.Greater(t, tuning.PrefixScore, tuning.WordScore)
	assert.Greater(t, tuning.WordScore, tuning.SubstringScore)
	assert.Greater(t, tuning.SubstringScore, tuning.FuzzyScore)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5, cfg.WindowSize)
	assert.Equal(t, 20000, cfg.MaxCombinedSize)
	assert.Equal(t, 200, cfg.Limits.MaxTitleLen)
	assert.Equal(t, 10000, cfg.Limits.MaxContentLen)
}
