package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/ats-engine/internal/extraction"
	"alfredoptarigan/ats-engine/internal/models"
	"alfredoptarigan/ats-engine/internal/repositories"
)

// Values stored in Candidate.ExtractionSource.
const (
	SourceLLM       = "llm"
	SourceHeuristic = "heuristic"
)

var ErrCandidateArchived = errors.New("candidate is archived")

// ResumeUpload points at a resume already saved by the StorageService.
type ResumeUpload struct {
	Path         string
	Filename     string
	OriginalName string
	FileType     string
}

// CandidateIndexer embeds a stored candidate and writes it to the vector index.
type CandidateIndexer interface {
	IndexCandidate(ctx context.Context, id uuid.UUID) error
}

type ProfileService interface {
	CandidateIndexer
	ProcessResume(ctx context.Context, upload ResumeUpload) (*models.Candidate, error)
	GetCandidate(id uuid.UUID) (*models.Candidate, error)
	ArchiveCandidate(ctx context.Context, id uuid.UUID) error
}

type profileService struct {
	candidateRepo repositories.CandidateRepository
	parser        DocumentParser
	extractor     *extraction.Extractor
	llm           ProfileExtractor
	embedder      EmbeddingProvider
	index         VectorIndex
	dimension     int
	log           *zap.Logger
	now           func() time.Time
}

// NewProfileService wires resume processing. llm may be nil, in which case
// only the heuristic extractor runs.
func NewProfileService(
	candidateRepo repositories.CandidateRepository,
	parser DocumentParser,
	extractor *extraction.Extractor,
	llm ProfileExtractor,
	embedder EmbeddingProvider,
	index VectorIndex,
	dimension int,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		candidateRepo: candidateRepo,
		parser:        parser,
		extractor:     extractor,
		llm:           llm,
		embedder:      embedder,
		index:         index,
		dimension:     dimension,
		log:           log.Named("profile_service"),
		now:           time.Now,
	}
}

// ProcessResume extracts, stores and indexes one resume. Indexing failures
// are logged and leave the candidate pending for the index worker.
func (s *profileService) ProcessResume(ctx context.Context, upload ResumeUpload) (*models.Candidate, error) {
	text, err := s.parser.ExtractText(upload.Path, upload.FileType)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	if err := extraction.ValidateText(text); err != nil {
		return nil, fmt.Errorf("resume %s: %w", upload.OriginalName, err)
	}

	candidate := s.buildCandidate(ctx, text)
	candidate.ID = uuid.New()
	candidate.ResumeText = text
	candidate.Filename = upload.Filename
	candidate.OriginalFileName = upload.OriginalName
	candidate.FileType = upload.FileType
	candidate.FilePath = upload.Path
	candidate.Status = models.CandidateActive
	candidate.IndexState = models.IndexPending
	candidate.CreatedAt = s.now()
	candidate.UpdatedAt = candidate.CreatedAt

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}

	s.log.Info("candidate stored",
		zap.String("candidate_id", candidate.ID.String()),
		zap.String("source", candidate.ExtractionSource),
		zap.Int("primary_skills", len(candidate.PrimarySkills)),
	)

	vector, err := s.indexRecord(ctx, candidate)
	if err != nil {
		s.log.Warn("inline indexing failed, leaving candidate pending",
			zap.String("candidate_id", candidate.ID.String()),
			zap.Error(err),
		)
		if uerr := s.candidateRepo.UpdateIndexState(candidate.ID, repositories.IndexUpdate{
			State: models.IndexPending,
			Error: err.Error(),
		}); uerr != nil {
			s.log.Warn("failed to record index error", zap.Error(uerr))
		}
		return candidate, nil
	}

	if err := s.candidateRepo.UpdateIndexState(candidate.ID, repositories.IndexUpdate{
		State:     models.IndexIndexed,
		Embedding: vector,
	}); err != nil {
		return nil, err
	}
	candidate.Embedding = vector
	candidate.IndexState = models.IndexIndexed

	return candidate, nil
}

// IndexCandidate implements CandidateIndexer. A stored embedding is reused, so
// re-indexing only rewrites the vector point.
func (s *profileService) IndexCandidate(ctx context.Context, id uuid.UUID) error {
	candidate, err := s.candidateRepo.FindByID(id)
	if err != nil {
		return err
	}
	if candidate.Status != models.CandidateActive {
		return fmt.Errorf("candidate %s: %w", id, ErrCandidateArchived)
	}

	vector, err := s.indexRecord(ctx, candidate)
	if err != nil {
		if uerr := s.candidateRepo.UpdateIndexState(id, repositories.IndexUpdate{
			State: models.IndexFailed,
			Error: err.Error(),
		}); uerr != nil {
			s.log.Warn("failed to record index error", zap.String("candidate_id", id.String()), zap.Error(uerr))
		}
		return err
	}

	return s.candidateRepo.UpdateIndexState(id, repositories.IndexUpdate{
		State:     models.IndexIndexed,
		Embedding: vector,
	})
}

func (s *profileService) GetCandidate(id uuid.UUID) (*models.Candidate, error) {
	return s.candidateRepo.FindByID(id)
}

// ArchiveCandidate removes the candidate from ranking and search. The vector
// point is deleted on a best effort basis.
func (s *profileService) ArchiveCandidate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.candidateRepo.FindByID(id); err != nil {
		return err
	}
	if err := s.candidateRepo.UpdateStatus(id, models.CandidateArchived); err != nil {
		return err
	}

	if s.index != nil {
		if err := s.index.Delete(ctx, id.String()); err != nil {
			s.log.Warn("failed to delete archived candidate from index", zap.String("candidate_id", id.String()), zap.Error(err))
		}
	}
	return nil
}

func (s *profileService) indexRecord(ctx context.Context, candidate *models.Candidate) ([]float32, error) {
	if s.embedder == nil || s.index == nil {
		return nil, errors.New("vector indexing is not configured")
	}

	vector := candidate.Embedding
	if len(vector) == 0 {
		var err error
		vector, err = s.embedder.GenerateEmbedding(ctx, embeddingText(candidate))
		if err != nil {
			return nil, err
		}
	}
	if s.dimension > 0 && len(vector) != s.dimension {
		return nil, fmt.Errorf("embedding has %d dimensions, index expects %d", len(vector), s.dimension)
	}

	if err := s.index.Upsert(ctx, candidate.ID.String(), vector, candidate.IndexMetadata()); err != nil {
		return nil, err
	}
	return vector, nil
}

// buildCandidate runs the heuristic extractor and, when configured, the LLM.
// LLM values win; the heuristic fills what the LLM left empty.
func (s *profileService) buildCandidate(ctx context.Context, text string) *models.Candidate {
	h := s.extractor.ExtractProfile(text)
	candidate := &models.Candidate{
		Name:               h.Name,
		Email:              h.Email,
		Phone:              h.Phone,
		CurrentLocation:    h.Location,
		CurrentCompany:     h.CurrentCompany,
		CurrentDesignation: h.CurrentDesignation,
		PrimarySkills:      h.Skills.Primary,
		SecondarySkills:    h.Skills.Secondary,
		TotalExperience:    h.TotalExperience,
		Domains:            h.Domains,
		Education:          h.Education.Highest,
		EducationDetails:   h.Education.Section,
		ExtractionSource:   SourceHeuristic,
	}

	if s.llm == nil {
		return candidate
	}

	profile, err := s.llm.ExtractProfile(ctx, text)
	if err != nil {
		s.log.Warn("llm extraction failed, using heuristic profile", zap.Error(err))
		return candidate
	}

	applyExtracted(candidate, profile)
	candidate.ExtractionSource = SourceLLM
	return candidate
}

func applyExtracted(c *models.Candidate, p *ExtractedProfile) {
	c.Name = firstNonEmpty(p.Name, c.Name)
	c.Email = firstNonEmpty(p.Email, c.Email)
	c.Phone = firstNonEmpty(p.Phone, c.Phone)
	c.CurrentLocation = firstNonEmpty(p.CurrentLocation, c.CurrentLocation)
	c.CurrentCompany = firstNonEmpty(p.CurrentCompany, c.CurrentCompany)
	c.CurrentDesignation = firstNonEmpty(p.CurrentDesignation, c.CurrentDesignation)
	c.Education = firstNonEmpty(p.Education, c.Education)
	c.EducationDetails = firstNonEmpty(p.EducationDetails, c.EducationDetails)
	c.ResumeSummary = p.ResumeSummary
	c.Certifications = p.Certifications

	if len(p.PrimarySkills) > 0 {
		c.PrimarySkills = p.PrimarySkills
	}
	if len(p.SecondarySkills) > 0 {
		c.SecondarySkills = p.SecondarySkills
	}
	if len(p.Domains) > 0 {
		c.Domains = p.Domains
	}
	if p.TotalExperience > 0 {
		c.TotalExperience = p.TotalExperience
	}
}

// embeddingText is the resume text, or a synthetic profile when the text is
// gone.
func embeddingText(c *models.Candidate) string {
	if strings.TrimSpace(c.ResumeText) != "" {
		return c.ResumeText
	}
	parts := []string{c.Name, c.CurrentDesignation, c.ResumeSummary, strings.Join(c.AllSkills(), ", "), strings.Join(c.Domains, ", ")}
	return strings.Join(parts, "\n")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
