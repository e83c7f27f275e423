package persistent

import (
	"context"
	"strings"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

// videoSortFields is the allow-list for client-supplied sort keys.
var videoSortFields = map[string]bool{
	"created_at": true,
	"views":      true,
	"duration":   true,
	"title":      true,
}

// VideoListQuery carries the list endpoint's filters. PublishedOnly is
// forced on for everyone except the owner browsing their own uploads.
type VideoListQuery struct {
	Query         string
	OwnerID       string
	PublishedOnly bool
	SortBy        string
	SortType      string
	Page          int
	Limit         int
	PrincipalID   string
}

type VideoRepository interface {
	Create(ctx context.Context, video *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	GetViewByID(ctx context.Context, id, principalID string) (*entity.VideoView, error)
	List(ctx context.Context, q VideoListQuery) (*pipeline.Page[entity.VideoView], error)
	Update(ctx context.Context, id, ownerID, title, description, thumbnail string) (*entity.Video, error)
	Delete(ctx context.Context, id, ownerID string) (*entity.Video, error)
	TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error)
	IncrementViews(ctx context.Context, id string) error
}

type videoRepository struct {
	db *surrealdb.DB
}

func NewVideoRepository(db *surrealdb.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	id := recordID(model.VideoTable, uuid.New().String())
	doc := model.VideoDoc{
		ID:          &id,
		Owner:       recordID(model.UserTable, video.OwnerID),
		VideoFile:   video.VideoFile,
		Thumbnail:   video.Thumbnail,
		Title:       video.Title,
		Description: video.Description,
		Duration:    video.Duration,
		IsPublished: video.IsPublished,
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}

	created, err := surrealdb.Create[model.VideoDoc](ctx, r.db, model.VideoTable, doc)
	if err != nil {
		return err
	}

	*video = *ToVideoEntity(created)
	return nil
}

func (r *videoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	doc, err := querySingle[model.VideoDoc](ctx, r.db,
		"SELECT * FROM video WHERE id = $id",
		map[string]interface{}{"id": recordID(model.VideoTable, id)})
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(doc), nil
}

func (r *videoRepository) GetViewByID(ctx context.Context, id, principalID string) (*entity.VideoView, error) {
	p := pipeline.From(model.VideoTable).
		Match("id = $id").
		Bind("id", recordID(model.VideoTable, id)).
		Project("id", "video_file", "thumbnail", "title", "description",
			"duration", "views", "is_published", "created_at", "updated_at").
		Paginate(1, 1)
	withOwner(p)
	withLikeState(p, "video", principalRecord(principalID))

	doc, err := querySingle[model.VideoViewDoc](ctx, r.db, p.SelectQuery(), p.Vars())
	if err != nil {
		return nil, err
	}
	view := ToVideoViewEntity(doc)
	return &view, nil
}

func (r *videoRepository) List(ctx context.Context, q VideoListQuery) (*pipeline.Page[entity.VideoView], error) {
	sortField, sortDesc := pipeline.SanitizeSort(q.SortBy, q.SortType, videoSortFields)

	p := pipeline.From(model.VideoTable).
		Sort(sortField, sortDesc).
		Paginate(q.Page, q.Limit).
		Project("id", "video_file", "thumbnail", "title", "description",
			"duration", "views", "is_published", "created_at", "updated_at")

	if q.PublishedOnly {
		p.Match("is_published = true")
	}
	if q.OwnerID != "" {
		p.Match("owner = $owner").Bind("owner", recordID(model.UserTable, q.OwnerID))
	}
	if q.Query != "" {
		p.Match("(string::lowercase(title) CONTAINS $q OR string::lowercase(description) CONTAINS $q)").
			Bind("q", strings.ToLower(q.Query))
	}

	withOwner(p)
	withLikeState(p, "video", principalRecord(q.PrincipalID))

	docs, err := pipeline.Execute[model.VideoViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToVideoViewEntity), nil
}

func (r *videoRepository) Update(ctx context.Context, id, ownerID, title, description, thumbnail string) (*entity.Video, error) {
	doc, err := querySingle[model.VideoDoc](ctx, r.db,
		"UPDATE video SET title = $title, description = $description, thumbnail = $thumbnail, updated_at = $now WHERE id = $id AND owner = $principal RETURN AFTER",
		map[string]interface{}{
			"id":          recordID(model.VideoTable, id),
			"principal":   recordID(model.UserTable, ownerID),
			"title":       title,
			"description": description,
			"thumbnail":   thumbnail,
			"now":         now(),
		})
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.VideoTable, id)
	}
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(doc), nil
}

func (r *videoRepository) Delete(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	vars := map[string]interface{}{
		"id":        recordID(model.VideoTable, id),
		"principal": recordID(model.UserTable, ownerID),
	}

	doc, err := querySingle[model.VideoDoc](ctx, r.db,
		"DELETE video WHERE id = $id AND owner = $principal RETURN BEFORE", vars)
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.VideoTable, id)
	}
	if err != nil {
		return nil, err
	}

	// Cascade after the gated delete succeeded. Comment likes go first so
	// the comment subquery still resolves.
	cascade := `
DELETE like WHERE comment INSIDE (SELECT VALUE id FROM comment WHERE video = $id);
DELETE comment WHERE video = $id;
DELETE like WHERE video = $id;
UPDATE playlist SET videos = array::difference(videos, [$id]) WHERE $id INSIDE videos;
UPDATE user SET watch_history = array::difference(watch_history, [$id]) WHERE $id INSIDE watch_history;
`
	if err := exec(ctx, r.db, cascade, vars); err != nil {
		return nil, err
	}
	return ToVideoEntity(doc), nil
}

func (r *videoRepository) TogglePublish(ctx context.Context, id, ownerID string) (*entity.Video, error) {
	doc, err := querySingle[model.VideoDoc](ctx, r.db,
		"UPDATE video SET is_published = !is_published, updated_at = $now WHERE id = $id AND owner = $principal RETURN AFTER",
		map[string]interface{}{
			"id":        recordID(model.VideoTable, id),
			"principal": recordID(model.UserTable, ownerID),
			"now":       now(),
		})
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.VideoTable, id)
	}
	if err != nil {
		return nil, err
	}
	return ToVideoEntity(doc), nil
}

func (r *videoRepository) IncrementViews(ctx context.Context, id string) error {
	return exec(ctx, r.db,
		"UPDATE video SET views += 1 WHERE id = $id",
		map[string]interface{}{"id": recordID(model.VideoTable, id)})
}
