package persistent

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

type DashboardRepository interface {
	GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error)
	GetChannelVideos(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.VideoView], error)
}

type dashboardRepository struct {
	db *surrealdb.DB
}

func NewDashboardRepository(db *surrealdb.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

type channelStatsRow struct {
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalVideos      int64 `json:"total_videos"`
	TotalLikes       int64 `json:"total_likes"`
}

func (r *dashboardRepository) GetChannelStats(ctx context.Context, channelID string) (*entity.ChannelStats, error) {
	channel := recordID(model.UserTable, channelID)

	row, err := querySingle[channelStatsRow](ctx, r.db,
		`SELECT
			math::sum((SELECT VALUE views FROM video WHERE owner = $channel)) AS total_views,
			array::len((SELECT id FROM subscription WHERE channel = $channel)) AS total_subscribers,
			array::len((SELECT id FROM video WHERE owner = $channel)) AS total_videos,
			array::len((SELECT id FROM like WHERE video.owner = $channel)) AS total_likes
		FROM user WHERE id = $channel`,
		map[string]interface{}{"channel": channel})
	if err != nil {
		return nil, err
	}

	recent, err := r.GetChannelVideos(ctx, channelID, 1, 5)
	if err != nil {
		return nil, err
	}

	return &entity.ChannelStats{
		TotalViews:       row.TotalViews,
		TotalSubscribers: row.TotalSubscribers,
		TotalVideos:      row.TotalVideos,
		TotalLikes:       row.TotalLikes,
		RecentVideos:     recent.Items,
	}, nil
}

// GetChannelVideos lists the channel's own uploads, unpublished included.
func (r *dashboardRepository) GetChannelVideos(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.VideoView], error) {
	p := pipeline.From(model.VideoTable).
		Match("owner = $owner").
		Bind("owner", recordID(model.UserTable, channelID)).
		Project("id", "video_file", "thumbnail", "title", "description",
			"duration", "views", "is_published", "created_at", "updated_at").
		Paginate(page, limit)
	withOwner(p)
	withLikeState(p, "video", recordID(model.UserTable, channelID))

	docs, err := pipeline.Execute[model.VideoViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToVideoViewEntity), nil
}
