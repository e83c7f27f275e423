package usecase

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
)

type DashboardUseCase interface {
	GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.VideoView], error)
}

type dashboardUseCase struct {
	dashboardRepo persistent.DashboardRepository
}

func NewDashboardUseCase(dashboardRepo persistent.DashboardRepository) DashboardUseCase {
	return &dashboardUseCase{dashboardRepo: dashboardRepo}
}

func (uc *dashboardUseCase) GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	stats, err := uc.dashboardRepo.GetChannelStats(ctx, channelID)
	if err != nil {
		return nil, mapRepoErr(err, "channel")
	}
	return stats, nil
}

func (uc *dashboardUseCase) GetChannelVideos(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.VideoView], error) {
	return uc.dashboardRepo.GetChannelVideos(ctx, channelID, page, limit)
}
