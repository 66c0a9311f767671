package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/models"
)

// ExtractedProfile is the model's view of a resume. List fields may arrive
// as arrays or as comma separated strings; both decode to []string.
type ExtractedProfile struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Phone              string   `json:"phone"`
	CurrentLocation    string   `json:"current_location"`
	CurrentCompany     string   `json:"current_company"`
	CurrentDesignation string   `json:"current_designation"`
	TotalExperience    float64  `json:"total_experience"`
	PrimarySkills      []string `json:"primary_skills"`
	SecondarySkills    []string `json:"secondary_skills"`
	Domains            []string `json:"domain"`
	Education          string   `json:"education"`
	EducationDetails   string   `json:"education_details"`
	Certifications     []string `json:"certifications"`
	ResumeSummary      string   `json:"resume_summary"`
}

// ProfileExtractor derives a structured profile from resume text.
type ProfileExtractor interface {
	ExtractProfile(ctx context.Context, resumeText string) (*ExtractedProfile, error)
}

type llmProfileExtractor struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
	maxRetries    int
	log           *zap.Logger
}

func NewLLMProfileExtractor(gemini GeminiService, maxRetries int, log *zap.Logger) ProfileExtractor {
	return &llmProfileExtractor{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
		log:           log.Named("profile_extractor"),
	}
}

func (e *llmProfileExtractor) ExtractProfile(ctx context.Context, resumeText string) (*ExtractedProfile, error) {
	prompt := e.promptBuilder.BuildProfileExtractionPrompt(resumeText)

	response, err := e.gemini.GenerateTextWithRetry(ctx, prompt, 0.1, e.maxRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile: %w", err)
	}

	profile, err := ParseExtractedProfile(response)
	if err != nil {
		e.log.Warn("unparseable profile response", zap.Int("length", len(response)), zap.Error(err))
		return nil, err
	}

	return profile, nil
}

// ParseExtractedProfile decodes a model response into an ExtractedProfile.
func ParseExtractedProfile(response string) (*ExtractedProfile, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(extractJSON(response)), &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}

	var profile ExtractedProfile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &profile,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToListHook,
			stringToYearsHook,
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build profile decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	profile.normalize()
	return &profile, nil
}

func (p *ExtractedProfile) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.PrimarySkills = models.SplitSkills(p.PrimarySkills...)
	p.SecondarySkills = models.SplitSkills(p.SecondarySkills...)
	p.Domains = models.SplitSkills(p.Domains...)
	p.Certifications = models.SplitSkills(p.Certifications...)
	if p.TotalExperience < 0 {
		p.TotalExperience = 0
	}
}

var stringSliceType = reflect.TypeOf([]string{})

func stringToListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != stringSliceType {
		return data, nil
	}
	return models.SplitSkills(data.(string)), nil
}

var leadingNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)

// stringToYearsHook accepts values such as "5+ years" for numeric fields.
func stringToYearsHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Float64 {
		return data, nil
	}
	m := leadingNumber.FindString(data.(string))
	if m == "" {
		return 0.0, nil
	}
	return strconv.ParseFloat(m, 64)
}
