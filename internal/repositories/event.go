package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/dhvanil3103/ats-resume/internal/models"
)

type AnalysisEventRepository interface {
	Create(ctx context.Context, event *models.AnalysisEvent) error
}

type analysisEventRepository struct {
	db *gorm.DB
}

func NewAnalysisEventRepository(db *gorm.DB) AnalysisEventRepository {
	return &analysisEventRepository{db: db}
}

// Create implements AnalysisEventRepository.
func (r *analysisEventRepository) Create(ctx context.Context, event *models.AnalysisEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create analysis event: %w", err)
	}
	return nil
}
