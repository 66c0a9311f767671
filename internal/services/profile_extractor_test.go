package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseExtractedProfile(t *testing.T) {
	response := "Here is the profile:\n```json\n" + `{
  "name": " Asha Verma ",
  "email": "asha@example.com",
  "total_experience": "6+ years",
  "primary_skills": "Python, Django ,PostgreSQL",
  "secondary_skills": ["Mentoring", ""],
  "domain": ["Banking"],
  "education": "Bachelors",
  "certifications": null,
  "resume_summary": "Backend engineer."
}` + "\n```"

	profile, err := ParseExtractedProfile(response)
	require.NoError(t, err)

	assert.Equal(t, "Asha Verma", profile.Name)
	assert.Equal(t, 6.0, profile.TotalExperience)
	assert.Equal(t, []string{"Python", "Django", "PostgreSQL"}, profile.PrimarySkills)
	assert.Equal(t, []string{"Mentoring"}, profile.SecondarySkills)
	assert.Equal(t, []string{"Banking"}, profile.Domains)
	assert.Equal(t, []string{}, profile.Certifications)
	assert.Equal(t, "Backend engineer.", profile.ResumeSummary)
}

func TestParseExtractedProfile_Numbers(t *testing.T) {
	profile, err := ParseExtractedProfile(`{"total_experience": 4.5}`)
	require.NoError(t, err)
	assert.Equal(t, 4.5, profile.TotalExperience)

	profile, err = ParseExtractedProfile(`{"total_experience": "not stated"}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, profile.TotalExperience)

	profile, err = ParseExtractedProfile(`{"total_experience": -3}`)
	require.NoError(t, err)
	assert.Equal(t, 0.0, profile.TotalExperience)
}

func TestParseExtractedProfile_Invalid(t *testing.T) {
	_, err := ParseExtractedProfile("I could not read this resume.")
	require.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, extractJSON("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `[1,2]`, extractJSON("result: [1,2] done"))
	assert.Equal(t, "plain", extractJSON("  plain  "))
}

type fakeGemini struct {
	response string
	err      error
	prompts  []string
}

func (g *fakeGemini) GenerateEmbedding(context.Context, string) ([]float32, error) {
	return nil, errors.New("not used")
}

func (g *fakeGemini) GenerateText(_ context.Context, prompt string, _ float32) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.response, g.err
}

func (g *fakeGemini) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32, _ int) (string, error) {
	return g.GenerateText(ctx, prompt, temperature)
}

func TestLLMProfileExtractor(t *testing.T) {
	gemini := &fakeGemini{response: `{"name": "Asha", "primary_skills": ["Go"]}`}
	extractor := NewLLMProfileExtractor(gemini, 2, zap.NewNop())

	profile, err := extractor.ExtractProfile(context.Background(), "Asha resume text")
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.Equal(t, []string{"Go"}, profile.PrimarySkills)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], "Asha resume text")

	gemini.err = errors.New("quota")
	_, err = extractor.ExtractProfile(context.Background(), "text")
	require.Error(t, err)
}
