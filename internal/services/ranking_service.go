package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/extraction"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/ranking"
	"alfredoptarigan/ats-engine/internal/repositories"
)

// maxRequiredSkills is how many description skills become required; the
// rest are preferred.
const maxRequiredSkills = 15

const (
	semanticEnabled  = "enabled"
	semanticDisabled = "disabled"
)

var ErrJobNotFound = errors.New("job not found")

type RankingOptions struct {
	Weights         ranking.Weights
	TopK            int
	MinMatchPercent float64
}

type RankingService interface {
	RankByJob(ctx context.Context, req models.RankRequest) (*models.RankResponse, error)
	History(jobID string, limit int) ([]models.Ranking, error)
	GetJob(jobID string) (*models.Job, error)
}

type rankingService struct {
	jobRepo       repositories.JobRepository
	candidateRepo repositories.CandidateRepository
	rankingRepo   repositories.RankingRepository
	extractor     *extraction.Extractor
	cleaner       *TextCleaner
	embedder      EmbeddingProvider
	ranker        *ranking.Ranker
	opts          RankingOptions
	log           *zap.Logger
	now           func() time.Time
}

// NewRankingService wires job ranking. embedder may be nil, which disables
// the semantic boost.
func NewRankingService(
	jobRepo repositories.JobRepository,
	candidateRepo repositories.CandidateRepository,
	rankingRepo repositories.RankingRepository,
	extractor *extraction.Extractor,
	cleaner *TextCleaner,
	embedder EmbeddingProvider,
	ranker *ranking.Ranker,
	opts RankingOptions,
	log *zap.Logger,
) RankingService {
	if opts.TopK < 1 {
		opts.TopK = 50
	}
	return &rankingService{
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		rankingRepo:   rankingRepo,
		extractor:     extractor,
		cleaner:       cleaner,
		embedder:      embedder,
		ranker:        ranker,
		opts:          opts,
		log:           log.Named("ranking_service"),
		now:           time.Now,
	}
}

func (s *rankingService) RankByJob(ctx context.Context, req models.RankRequest) (*models.RankResponse, error) {
	runAt := s.now().UTC()

	job, err := s.resolveJob(req, runAt)
	if err != nil {
		return nil, err
	}

	semantic := semanticDisabled
	if vector := s.embedJob(ctx, job); len(vector) > 0 {
		job.Embedding = vector
		semantic = semanticEnabled
	}

	if err := s.jobRepo.Upsert(job); err != nil {
		return nil, err
	}

	minMatch := s.opts.MinMatchPercent
	if req.MinMatchPercent != nil {
		minMatch = *req.MinMatchPercent
	}
	topK := s.opts.TopK
	if req.TopK > 0 {
		topK = req.TopK
	}

	resp := &models.RankResponse{
		Status:         "success",
		JobID:          job.ID,
		RankedProfiles: []models.RankedProfile{},
		Requirements:   requirementsView(job),
		Criteria: models.RankingCriteria{
			Weights:            s.opts.Weights,
			SemanticSimilarity: semantic,
			MinMatchPercent:    minMatch,
		},
		Timestamp: runAt,
	}

	candidates, err := s.candidateRepo.List(repositories.CandidateFilter{Status: models.CandidateActive})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		resp.Message = "No active candidate profiles found in database"
		return resp, nil
	}

	profiles := make([]ranking.CandidateProfile, len(candidates))
	for i := range candidates {
		profiles[i] = candidates[i].Profile()
	}

	results, err := s.ranker.Rank(ctx, profiles, job.Requirements(), topK)
	if err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}
	eligible := ranking.FilterEligible(results, minMatch)

	resp.TotalCandidatesEvaluated = len(candidates)
	resp.TotalCandidatesRanked = len(results)
	resp.EligibleReturned = len(eligible)

	if len(eligible) == 0 {
		resp.Message = fmt.Sprintf("No candidates met the minimum match threshold of %.1f%%", minMatch)
		return resp, nil
	}

	if err := s.persist(job.ID, eligible, runAt); err != nil {
		return nil, err
	}

	for _, r := range eligible {
		resp.RankedProfiles = append(resp.RankedProfiles, models.RankedProfile{
			MatchResult:  r,
			MatchPercent: r.MatchPercent(),
		})
	}
	resp.Message = fmt.Sprintf("Successfully ranked %d eligible candidates out of %d", len(eligible), len(candidates))

	s.log.Info("ranking completed",
		zap.String("job_id", job.ID),
		zap.Int("evaluated", len(candidates)),
		zap.Int("eligible", len(eligible)),
		zap.String("semantic", semantic),
	)
	return resp, nil
}

func (s *rankingService) History(jobID string, limit int) ([]models.Ranking, error) {
	if _, err := s.GetJob(jobID); err != nil {
		return nil, err
	}
	return s.rankingRepo.FindByJob(jobID, limit)
}

func (s *rankingService) GetJob(jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
	}
	return job, err
}

// resolveJob layers requirements: explicit request fields override a stored
// job, which overrides what is extracted from the description.
func (s *rankingService) resolveJob(req models.RankRequest, runAt time.Time) (*models.Job, error) {
	description := s.cleaner.StripMarkup(req.JobDescription)

	var stored *models.Job
	if req.JobID != "" {
		found, err := s.jobRepo.FindByID(req.JobID)
		switch {
		case err == nil:
			stored = found
		case !errors.Is(err, repositories.ErrNotFound):
			return nil, err
		case description == "":
			return nil, fmt.Errorf("%w: %s", ErrJobNotFound, req.JobID)
		}
	}

	job := s.extractRequirements(description)
	if stored != nil {
		overlayJob(job, stored)
		if description == "" {
			job.Description = stored.Description
		}
	}
	overlayRequest(job, req)

	switch {
	case req.JobID != "":
		job.ID = req.JobID
	case stored != nil:
		job.ID = stored.ID
	default:
		job.ID = fmt.Sprintf("JD_%d", runAt.Unix())
	}
	if stored != nil {
		job.CreatedAt = stored.CreatedAt
	}

	return job, nil
}

func (s *rankingService) extractRequirements(description string) *models.Job {
	job := &models.Job{
		Description:     description,
		RequiredSkills:  []string{},
		PreferredSkills: []string{},
	}
	if description == "" {
		return job
	}

	skills := s.extractor.MatchSkills(description)
	if len(skills) > maxRequiredSkills {
		job.RequiredSkills = skills[:maxRequiredSkills]
		job.PreferredSkills = skills[maxRequiredSkills:]
	} else {
		job.RequiredSkills = skills
	}

	job.MinExperience = s.extractor.ExtractExperience(description)
	if domains := s.extractor.ExtractDomains(description); len(domains) > 0 {
		job.Domain = domains[0]
	}
	job.EducationRequired = s.extractor.ExtractEducation(description).Highest
	return job
}

func overlayJob(job, stored *models.Job) {
	job.Title = firstNonEmpty(stored.Title, job.Title)
	if len(stored.RequiredSkills) > 0 {
		job.RequiredSkills = stored.RequiredSkills
	}
	if len(stored.PreferredSkills) > 0 {
		job.PreferredSkills = stored.PreferredSkills
	}
	if stored.MinExperience > 0 {
		job.MinExperience = stored.MinExperience
	}
	if stored.MaxExperience != nil {
		job.MaxExperience = stored.MaxExperience
	}
	job.Domain = firstNonEmpty(stored.Domain, job.Domain)
	job.EducationRequired = firstNonEmpty(stored.EducationRequired, job.EducationRequired)
}

func overlayRequest(job *models.Job, req models.RankRequest) {
	job.Title = firstNonEmpty(req.JobTitle, job.Title)
	if len(req.RequiredSkills) > 0 {
		job.RequiredSkills = req.RequiredSkills
	}
	if len(req.PreferredSkills) > 0 {
		job.PreferredSkills = req.PreferredSkills
	}
	if req.MinExperience != nil {
		job.MinExperience = *req.MinExperience
	}
	if req.MaxExperience != nil {
		job.MaxExperience = req.MaxExperience
	}
	job.Domain = firstNonEmpty(req.Domain, job.Domain)
	job.EducationRequired = firstNonEmpty(req.EducationRequired, job.EducationRequired)
}

// embedJob returns nil when no embedder is configured or embedding fails;
// ranking then proceeds without the semantic boost.
func (s *rankingService) embedJob(ctx context.Context, job *models.Job) []float32 {
	if s.embedder == nil {
		return nil
	}

	text := job.Description
	if strings.TrimSpace(text) == "" {
		text = strings.Join(append(append([]string{job.Title}, job.RequiredSkills...), job.PreferredSkills...), ", ")
	}
	if strings.TrimSpace(strings.Trim(text, ", ")) == "" {
		return nil
	}

	vector, err := s.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		s.log.Warn("job embedding failed, ranking without semantic boost", zap.String("job_id", job.ID), zap.Error(err))
		return nil
	}
	return vector
}

// persist stores one run; every row shares runAt so a run can be told apart
// from earlier ones.
func (s *rankingService) persist(jobID string, results []ranking.MatchResult, runAt time.Time) error {
	rows := make([]models.Ranking, 0, len(results))
	for _, r := range results {
		row, err := models.NewRanking(jobID, r)
		if err != nil {
			s.log.Warn("skipping ranking with malformed candidate id", zap.String("candidate_id", r.CandidateID), zap.Error(err))
			continue
		}
		row.CreatedAt = runAt
		rows = append(rows, row)
	}
	return s.rankingRepo.CreateBatch(rows)
}

func requirementsView(job *models.Job) models.JobRequirementsView {
	return models.JobRequirementsView{
		RequiredSkills:    job.RequiredSkills,
		PreferredSkills:   job.PreferredSkills,
		MinExperience:     job.MinExperience,
		MaxExperience:     job.MaxExperience,
		Domain:            job.Domain,
		EducationRequired: job.EducationRequired,
	}
}

// LatestRun keeps the rows of the newest run from rankings ordered newest
// first, as FindByJob returns them.
func LatestRun(rankings []models.Ranking) []models.Ranking {
	if len(rankings) == 0 {
		return rankings
	}
	newest := rankings[0].CreatedAt
	out := make([]models.Ranking, 0, len(rankings))
	for _, r := range rankings {
		if r.CreatedAt.Equal(newest) {
			out = append(out, r)
		}
	}
	return out
}
