package services

import (
	"fmt"
	"strings"
)

// maxPromptResume bounds the resume text sent to the model.
const maxPromptResume = 30000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildProfileExtractionPrompt asks the model for a structured candidate
// profile as a single JSON object.
func (pb *PromptBuilder) BuildProfileExtractionPrompt(resumeText string) string {
	if len(resumeText) > maxPromptResume {
		resumeText = resumeText[:maxPromptResume]
	}

	return fmt.Sprintf(`You are an expert technical recruiter extracting structured data from a resume.

RESUME:
%s

Extract the candidate profile and return ONLY a JSON object with exactly these keys:
{
  "name": "<full name or empty string>",
  "email": "<email or empty string>",
  "phone": "<phone or empty string>",
  "current_location": "<city, country or empty string>",
  "current_company": "<most recent employer or empty string>",
  "current_designation": "<most recent job title or empty string>",
  "total_experience": <total years of professional experience as a number>,
  "primary_skills": ["<technical skills, tools, languages, frameworks>"],
  "secondary_skills": ["<soft or non-technical skills>"],
  "domain": ["<industry domains the candidate worked in>"],
  "education": "<highest degree: PhD, Masters, Bachelors, Diploma or empty string>",
  "education_details": "<degrees and institutions, one line>",
  "certifications": ["<certifications>"],
  "resume_summary": "<two sentence professional summary>"
}

Rules:
- Do not invent information that is not in the resume.
- Use empty strings or empty arrays for anything missing.
- total_experience must be a number, 0 when unknown.`, strings.TrimSpace(resumeText))
}

// extractJSON strips markdown fences and surrounding prose from a model
// response, returning the outermost JSON object or array.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	startObj := strings.Index(text, "{")
	startArr := strings.Index(text, "[")
	endObj := strings.LastIndex(text, "}")
	endArr := strings.LastIndex(text, "]")

	if startObj != -1 && endObj != -1 && endObj > startObj {
		return text[startObj : endObj+1]
	} else if startArr != -1 && endArr != -1 && endArr > startArr {
		return text[startArr : endArr+1]
	}

	return strings.TrimSpace(text)
}
