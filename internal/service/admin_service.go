package service

import (
	"context"

	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/implementation"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/questionbank"
)

// IAdminService backs the JWT-protected operations surface: catalog health
// and log inspection.
type IAdminService interface {
	GetCatalogStats(ctx context.Context) (*dto.CatalogStatsResponse, error)
	GetLogs(ctx context.Context, level string, limit, offset int) ([]logger.LogEntry, error)
}

type adminService struct {
	catalog *catalog.Store
	bank    *questionbank.Bank
	records implementation.IQualificationRecordRepository
	log     logger.ILogger
}

// NewAdminService wires the ops surface. records may be nil when no
// database is configured; completed-qualification counts then report zero.
func NewAdminService(
	catalogStore *catalog.Store,
	bank *questionbank.Bank,
	records implementation.IQualificationRecordRepository,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		catalog: catalogStore,
		bank:    bank,
		records: records,
		log:     log,
	}
}

func (s *adminService) GetCatalogStats(ctx context.Context) (*dto.CatalogStatsResponse, error) {
	stats := &dto.CatalogStatsResponse{
		TotalProducts: s.catalog.Len(),
	}
	for _, category := range s.catalog.Categories() {
		var completed int64
		if s.records != nil {
			count, err := s.records.CountByCategory(ctx, category)
			if err != nil {
				return nil, err
			}
			completed = count
		}
		stats.Categories = append(stats.Categories, dto.CatalogCategoryStats{
			Category:                category,
			Products:                len(s.catalog.ByCategory(category)),
			TotalSteps:              s.bank.TotalSteps(category),
			ContextSteps:            len(s.bank.StepsForPhase(category, questionbank.PhaseContext)),
			PrimarySteps:            len(s.bank.StepsForPhase(category, questionbank.PhasePrimaryProblem)),
			GoalSteps:               len(s.bank.StepsForPhase(category, questionbank.PhaseGoals)),
			CompletedQualifications: completed,
		})
	}
	return stats, nil
}

func (s *adminService) GetLogs(_ context.Context, level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.log.GetLogs(level, limit, offset)
}
