package repositories

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ats-engine/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uuid.UUID) (*models.Candidate, error)
	List(filter CandidateFilter) ([]models.Candidate, error)
	UpdateStatus(id uuid.UUID, status models.CandidateStatus) error
	UpdateIndexState(id uuid.UUID, update IndexUpdate) error
	Statistics() (*models.Statistics, error)
}

// CandidateFilter narrows List. Zero fields do not filter; Limit <= 0 returns
// every match.
type CandidateFilter struct {
	Status     models.CandidateStatus
	IndexState models.IndexState
	Limit      int
}

// IndexUpdate records the outcome of an indexing attempt. Embedding is only
// written when non-empty.
type IndexUpdate struct {
	State     models.IndexState
	Embedding []float32
	Error     string
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) FindByID(id uuid.UUID) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("candidate %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}
	return &candidate, nil
}

// List returns candidates oldest first so repeated calls see a stable order.
func (r *candidateRepository) List(filter CandidateFilter) ([]models.Candidate, error) {
	query := r.db.Model(&models.Candidate{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.IndexState != "" {
		query = query.Where("index_state = ?", filter.IndexState)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var candidates []models.Candidate
	if err := query.Order("created_at ASC").Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}

func (r *candidateRepository) UpdateStatus(id uuid.UUID, status models.CandidateStatus) error {
	result := r.db.Model(&models.Candidate{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}

	return nil
}

func (r *candidateRepository) UpdateIndexState(id uuid.UUID, update IndexUpdate) error {
	updates := map[string]interface{}{
		"index_state": update.State,
		"updated_at":  time.Now(),
	}

	if update.Error != "" {
		updates["index_error"] = update.Error
	} else {
		updates["index_error"] = nil
	}

	// Map updates skip the json serializer; the embedding goes through a
	// struct update below.
	result := r.db.Model(&models.Candidate{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update index state: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("candidate %s: %w", id, ErrNotFound)
	}

	if len(update.Embedding) > 0 {
		if err := r.db.Model(&models.Candidate{ID: id}).
			Select("embedding").
			Updates(&models.Candidate{Embedding: update.Embedding}).Error; err != nil {
			return fmt.Errorf("failed to store embedding: %w", err)
		}
	}

	return nil
}

func (r *candidateRepository) Statistics() (*models.Statistics, error) {
	var stats models.Statistics

	counts := []struct {
		model any
		where string
		args  []any
		dst   *int64
	}{
		{&models.Candidate{}, "status = ?", []any{models.CandidateActive}, &stats.TotalResumes},
		{&models.Candidate{}, "status = ?", []any{models.CandidateArchived}, &stats.ArchivedResumes},
		{&models.Candidate{}, "status = ? AND index_state <> ?", []any{models.CandidateActive, models.IndexIndexed}, &stats.PendingIndex},
		{&models.Job{}, "", nil, &stats.TotalJobs},
		{&models.Ranking{}, "", nil, &stats.TotalRankings},
	}

	for _, c := range counts {
		query := r.db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.args...)
		}
		if err := query.Count(c.dst).Error; err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
	}

	var avg *float64
	if err := r.db.Model(&models.Candidate{}).
		Where("status = ?", models.CandidateActive).
		Select("AVG(total_experience)").
		Scan(&avg).Error; err != nil {
		return nil, fmt.Errorf("failed to average experience: %w", err)
	}
	if avg != nil {
		stats.AvgExperience = math.Round(*avg*100) / 100
	}

	return &stats, nil
}
