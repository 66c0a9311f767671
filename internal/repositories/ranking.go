package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/ats-engine/internal/models"
)

const rankingBatchSize = 100

type RankingRepository interface {
	CreateBatch(rankings []models.Ranking) error
	FindByJob(jobID string, limit int) ([]models.Ranking, error)
}

type rankingRepository struct {
	db *gorm.DB
}

func NewRankingRepository(db *gorm.DB) RankingRepository {
	return &rankingRepository{db: db}
}

// CreateBatch stores one ranking run atomically.
func (r *rankingRepository) CreateBatch(rankings []models.Ranking) error {
	if len(rankings) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Job", "Candidate").CreateInBatches(rankings, rankingBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("failed to store rankings: %w", err)
	}
	return nil
}

// FindByJob returns the newest rankings for a job, best rank first within a run.
func (r *rankingRepository) FindByJob(jobID string, limit int) ([]models.Ranking, error) {
	query := r.db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Order("rank_position ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rankings []models.Ranking
	if err := query.Find(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to find rankings: %w", err)
	}
	return rankings, nil
}
