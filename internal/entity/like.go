package entity

import "time"

// LikeTargetKind names the single resource kind a like row points at.
type LikeTargetKind string

const (
	LikeTargetVideo   LikeTargetKind = "video"
	LikeTargetComment LikeTargetKind = "comment"
	LikeTargetTweet   LikeTargetKind = "tweet"
)

type Like struct {
	ID        string    `json:"id"`
	LikedByID string    `json:"likedById"`
	VideoID   string    `json:"videoId,omitempty"`
	CommentID string    `json:"commentId,omitempty"`
	TweetID   string    `json:"tweetId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikedVideo pairs a liked video's denormalized view with when it was liked.
type LikedVideo struct {
	Video   VideoView `json:"video"`
	LikedAt time.Time `json:"likedAt"`
}
