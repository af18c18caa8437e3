package implementation

import (
	"context"

	"beauty-advisor-be/internal/entity"

	"gorm.io/gorm"
)

// IQualificationRecordRepository persists completed qualifications.
type IQualificationRecordRepository interface {
	Create(ctx context.Context, record *entity.QualificationRecord) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type qualificationRecordRepository struct {
	db *gorm.DB
}

func NewQualificationRecordRepository(db *gorm.DB) IQualificationRecordRepository {
	return &qualificationRecordRepository{db: db}
}

func (r *qualificationRecordRepository) Create(ctx context.Context, record *entity.QualificationRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *qualificationRecordRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.QualificationRecord{}).
		Where("category = ?", category).
		Count(&count).Error
	return count, err
}
