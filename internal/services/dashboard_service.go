// Файл: internal/services/dashboard_service.go
package services

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"maintenance-system/internal/dto"
	"maintenance-system/internal/repositories"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardStatsCacheTTL = 30 * time.Second
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error)
}

type DashboardService struct {
	dashboardRepo repositories.DashboardRepositoryInterface
	cacheRepo     repositories.CacheRepositoryInterface
	logger        *zap.Logger
}

func NewDashboardService(
	dashboardRepo repositories.DashboardRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
) DashboardServiceInterface {
	return &DashboardService{dashboardRepo: dashboardRepo, cacheRepo: cacheRepo, logger: logger}
}

// GetStats отдаёт сводку с коротким кешем: дашборд опрашивается часто,
// а секундная свежесть тут не нужна. Любая ошибка кеша не фатальна.
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if cached, err := s.cacheRepo.Get(ctx, dashboardStatsCacheKey); err == nil {
		var stats dto.DashboardStatsDTO
		if unmarshalErr := json.Unmarshal([]byte(cached), &stats); unmarshalErr != nil {
			s.logger.Warn("GetStats: повреждённое значение в кеше, читаем из базы", zap.Error(unmarshalErr))
		} else {
			return &stats, nil
		}
	}

	stats, err := s.dashboardRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(stats); err == nil {
		if err := s.cacheRepo.Set(ctx, dashboardStatsCacheKey, raw, dashboardStatsCacheTTL); err != nil {
			s.logger.Warn("GetStats: не удалось записать сводку в кеш", zap.Error(err))
		}
	}

	return stats, nil
}
