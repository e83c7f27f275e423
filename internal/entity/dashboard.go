package entity

// ChannelStats aggregates a channel's totals for the dashboard.
type ChannelStats struct {
	TotalViews       int64       `json:"totalViews"`
	TotalSubscribers int64       `json:"totalSubscribers"`
	TotalVideos      int64       `json:"totalVideos"`
	TotalLikes       int64       `json:"totalLikes"`
	RecentVideos     []VideoView `json:"recentVideos"`
}
