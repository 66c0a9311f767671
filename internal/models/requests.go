package models

import (
	"encoding/json"
	"strings"
	"time"

	"alfredoptarigan/ats-engine/internal/ranking"
)

// SkillList accepts either a JSON array of strings or a single comma separated
// string, and always holds trimmed, non-empty entries.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = SplitSkills(list...)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = SplitSkills(joined)
	return nil
}

// SplitSkills splits every value on commas and drops empty entries.
func SplitSkills(values ...string) []string {
	out := []string{}
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

type UploadResponse struct {
	Status           string    `json:"status"`
	Message          string    `json:"message"`
	CandidateID      string    `json:"candidate_id"`
	CandidateName    string    `json:"candidate_name"`
	Email            string    `json:"email"`
	TotalExperience  float64   `json:"total_experience"`
	PrimarySkills    []string  `json:"primary_skills"`
	Domains          []string  `json:"domain"`
	Education        string    `json:"education"`
	ExtractionSource string    `json:"extraction_source"`
	Indexed          bool      `json:"indexed"`
	Timestamp        time.Time `json:"timestamp"`
}

type RankRequest struct {
	JobID             string    `json:"job_id" validate:"omitempty,max=128"`
	JobTitle          string    `json:"job_title" validate:"omitempty,max=256"`
	JobDescription    string    `json:"job_description" validate:"required_without=JobID"`
	RequiredSkills    SkillList `json:"required_skills" validate:"omitempty,max=200,dive,max=100"`
	PreferredSkills   SkillList `json:"preferred_skills" validate:"omitempty,max=200,dive,max=100"`
	MinExperience     *float64  `json:"min_experience" validate:"omitempty,gte=0,lte=50"`
	MaxExperience     *float64  `json:"max_experience" validate:"omitempty,gte=0,lte=60"`
	Domain            string    `json:"domain" validate:"omitempty,max=128"`
	EducationRequired string    `json:"education_required" validate:"omitempty,max=128"`
	TopK              int       `json:"top_k" validate:"omitempty,gte=1,lte=1000"`
	MinMatchPercent   *float64  `json:"min_match_percent" validate:"omitempty,gte=0,lte=100"`
}

// JobRequirementsView echoes the requirements a ranking actually used.
type JobRequirementsView struct {
	RequiredSkills    []string `json:"required_skills"`
	PreferredSkills   []string `json:"preferred_skills"`
	MinExperience     float64  `json:"min_experience"`
	MaxExperience     *float64 `json:"max_experience"`
	Domain            string   `json:"domain"`
	EducationRequired string   `json:"education_required"`
}

type RankingCriteria struct {
	Weights            ranking.Weights `json:"weights"`
	SemanticSimilarity string          `json:"semantic_similarity"`
	MinMatchPercent    float64         `json:"min_match_percent"`
}

// RankedProfile is a MatchResult with its display percentage.
type RankedProfile struct {
	ranking.MatchResult
	MatchPercent float64 `json:"match_percent"`
}

type RankResponse struct {
	Status                   string              `json:"status"`
	Message                  string              `json:"message"`
	JobID                    string              `json:"job_id"`
	RankedProfiles           []RankedProfile     `json:"ranked_profiles"`
	TotalCandidatesEvaluated int                 `json:"total_candidates_evaluated"`
	TotalCandidatesRanked    int                 `json:"total_candidates_ranked"`
	EligibleReturned         int                 `json:"eligible_candidates_returned"`
	Requirements             JobRequirementsView `json:"extracted_job_requirements"`
	Criteria                 RankingCriteria     `json:"ranking_criteria"`
	Timestamp                time.Time           `json:"timestamp"`
}

type SearchRequest struct {
	Query            string            `json:"query" validate:"required,max=1000"`
	TopK             int               `json:"top_k" validate:"omitempty,gte=1,lte=100"`
	UseBooleanSearch *bool             `json:"use_boolean_search"`
	Filters          map[string]string `json:"filters"`
}

type SearchHit struct {
	CandidateID     string         `json:"candidate_id"`
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	MatchScore      float32        `json:"match_score"`
	PrimarySkills   any            `json:"primary_skills"`
	TotalExperience any            `json:"total_experience"`
	Domain          any            `json:"domain"`
	Education       any            `json:"education"`
	CurrentLocation any            `json:"current_location"`
	CurrentCompany  any            `json:"current_company"`
	ResumeSummary   any            `json:"resume_summary"`
	Metadata        map[string]any `json:"metadata"`
}

type SearchResponse struct {
	Message              string      `json:"message"`
	Query                string      `json:"query"`
	Results              []SearchHit `json:"search_results"`
	TotalMatches         int         `json:"total_matches"`
	TotalBeforeFilter    *int        `json:"total_before_boolean_filter"`
	BooleanFilterApplied bool        `json:"boolean_filter_applied"`
	ProcessingTimeMillis int64       `json:"processing_time_ms"`
	Timestamp            time.Time   `json:"timestamp"`
}

type Statistics struct {
	TotalResumes    int64   `json:"total_resumes"`
	ArchivedResumes int64   `json:"archived_resumes"`
	PendingIndex    int64   `json:"pending_index"`
	TotalJobs       int64   `json:"total_jobs"`
	TotalRankings   int64   `json:"total_rankings"`
	AvgExperience   float64 `json:"avg_experience"`
}
