package usecase

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"time"

	"streamtube/internal/entity"
	"streamtube/internal/pipeline"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/logger"
	"streamtube/pkg/media"
	"streamtube/pkg/queue"
	"streamtube/pkg/response"
	"streamtube/pkg/s3"

	"github.com/redis/go-redis/v9"
)

type PublishVideoInput struct {
	Title       string
	Description string
	VideoFile   *multipart.FileHeader
	Thumbnail   *multipart.FileHeader
}

type VideoUseCase interface {
	List(ctx context.Context, q persistent.VideoListQuery) (*pipeline.Page[entity.VideoView], error)
	Publish(ctx context.Context, ownerID string, input PublishVideoInput) (*entity.Video, error)
	GetByID(ctx context.Context, id, principalID string) (*entity.VideoView, error)
	Update(ctx context.Context, id, ownerID, title, description string, thumbnail *multipart.FileHeader) (*entity.Video, error)
	Delete(ctx context.Context, id, ownerID string) error
	TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error)
}

type videoUseCase struct {
	videoRepo   persistent.VideoRepository
	userRepo    persistent.UserRepository
	s3Client    *s3.Client
	redisClient *redis.Client
	queueClient *queue.Client
	logger      *logger.Logger
}

func NewVideoUseCase(
	videoRepo persistent.VideoRepository,
	userRepo persistent.UserRepository,
	s3Client *s3.Client,
	redisClient *redis.Client,
	queueClient *queue.Client,
	logger *logger.Logger,
) VideoUseCase {
	return &videoUseCase{
		videoRepo:   videoRepo,
		userRepo:    userRepo,
		s3Client:    s3Client,
		redisClient: redisClient,
		queueClient: queueClient,
		logger:      logger,
	}
}

func (uc *videoUseCase) List(ctx context.Context, q persistent.VideoListQuery) (*pipeline.Page[entity.VideoView], error) {
	// Only the owner browsing their own uploads may see unpublished videos.
	if q.OwnerID == "" || q.OwnerID != q.PrincipalID {
		q.PublishedOnly = true
	}
	return uc.videoRepo.List(ctx, q)
}

func (uc *videoUseCase) Publish(ctx context.Context, ownerID string, input PublishVideoInput) (*entity.Video, error) {
	if input.VideoFile == nil {
		return nil, response.Validation("video file is required")
	}
	if input.Thumbnail == nil {
		return nil, response.Validation("thumbnail file is required")
	}

	duration, err := uc.probeDuration(input.VideoFile)
	if err != nil {
		uc.logger.Warn("failed to probe video duration: %v", err)
		duration = 0
	}

	folder := fmt.Sprintf("videos/%s", ownerID)
	videoURL, err := uploadToS3(uc.s3Client, folder, input.VideoFile, "video/mp4")
	if err != nil {
		return nil, response.Upstream("failed to upload video file")
	}

	thumbnailURL, err := uploadToS3(uc.s3Client, fmt.Sprintf("thumbnails/%s", ownerID), input.Thumbnail, "image/jpeg")
	if err != nil {
		uc.removeUpload(videoURL)
		return nil, response.Upstream("failed to upload thumbnail")
	}

	video := &entity.Video{
		OwnerID:     ownerID,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Title:       input.Title,
		Description: input.Description,
		Duration:    duration,
		IsPublished: true,
	}
	if err := uc.videoRepo.Create(ctx, video); err != nil {
		uc.removeUpload(videoURL)
		uc.removeUpload(thumbnailURL)
		return nil, err
	}

	if uc.queueClient != nil {
		go uc.publishVideoEvent(video)
	}

	return video, nil
}

// GetByID applies the visibility gate, deduplicates the view per principal
// and records watch history for authenticated viewers.
func (uc *videoUseCase) GetByID(ctx context.Context, id, principalID string) (*entity.VideoView, error) {
	view, err := uc.videoRepo.GetViewByID(ctx, id, principalID)
	if err != nil {
		return nil, mapRepoErr(err, "video")
	}

	if !view.IsPublished && view.Owner.ID != principalID {
		return nil, response.NotFound("video not found")
	}

	if uc.countView(ctx, id, principalID) {
		view.Views++
	}

	if principalID != "" {
		if err := uc.userRepo.AddToWatchHistory(ctx, principalID, id); err != nil {
			uc.logger.Warn("failed to record watch history for user %s: %v", principalID, err)
		}
	}

	return view, nil
}

// countView increments the counter at most once per principal per video,
// keyed in redis. Anonymous requests never count.
func (uc *videoUseCase) countView(ctx context.Context, videoID, principalID string) bool {
	if principalID == "" || uc.redisClient == nil {
		return false
	}

	viewKey := fmt.Sprintf("video_view:%s:%s", videoID, principalID)
	set, err := uc.redisClient.SetNX(ctx, viewKey, "1", 365*24*time.Hour).Result()
	if err != nil {
		uc.logger.Warn("failed to deduplicate view for video %s: %v", videoID, err)
		return false
	}
	if !set {
		return false
	}

	if err := uc.videoRepo.IncrementViews(ctx, videoID); err != nil {
		uc.logger.Error("failed to increment views for video %s: %v", videoID, err)
		return false
	}
	return true
}

func (uc *videoUseCase) Update(ctx context.Context, id, ownerID, title, description string, thumbnail *multipart.FileHeader) (*entity.Video, error) {
	current, err := uc.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err, "video")
	}

	thumbnailURL := current.Thumbnail
	if thumbnail != nil {
		thumbnailURL, err = uploadToS3(uc.s3Client, fmt.Sprintf("thumbnails/%s", ownerID), thumbnail, "image/jpeg")
		if err != nil {
			return nil, response.Upstream("failed to upload thumbnail")
		}
	}
	if title == "" {
		title = current.Title
	}
	if description == "" {
		description = current.Description
	}

	video, err := uc.videoRepo.Update(ctx, id, ownerID, title, description, thumbnailURL)
	if err != nil {
		if thumbnail != nil {
			uc.removeUpload(thumbnailURL)
		}
		return nil, mapRepoErr(err, "video")
	}

	if thumbnail != nil && current.Thumbnail != thumbnailURL {
		uc.removeUpload(current.Thumbnail)
	}
	return video, nil
}

func (uc *videoUseCase) Delete(ctx context.Context, id, ownerID string) error {
	video, err := uc.videoRepo.Delete(ctx, id, ownerID)
	if err != nil {
		return mapRepoErr(err, "video")
	}

	uc.removeUpload(video.VideoFile)
	uc.removeUpload(video.Thumbnail)
	return nil
}

func (uc *videoUseCase) TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	video, err := uc.videoRepo.TogglePublish(ctx, id, ownerID)
	if err != nil {
		return nil, mapRepoErr(err, "video")
	}
	return video, nil
}

// probeDuration spools the upload to a temp file so ffprobe can read it.
func (uc *videoUseCase) probeDuration(file *multipart.FileHeader) (int, error) {
	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "upload-*"+getFileExtension(file.Filename))
	if err != nil {
		return 0, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		return 0, err
	}
	return media.ProbeDuration(tmp.Name())
}

func (uc *videoUseCase) publishVideoEvent(video *entity.Video) {
	event := map[string]interface{}{
		"type":     "video_published",
		"video_id": video.ID,
		"owner_id": video.OwnerID,
		"title":    video.Title,
	}
	if err := uc.queueClient.PublishVideoEvent(event); err != nil {
		uc.logger.Error("failed to publish video event for %s: %v", video.ID, err)
	}
}

func (uc *videoUseCase) removeUpload(url string) {
	if url == "" {
		return
	}
	if err := uc.s3Client.DeleteFileByURL(url); err != nil {
		uc.logger.Warn("failed to delete object %s: %v", url, err)
	}
}
