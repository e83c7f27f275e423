package persistent

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *entity.Playlist) error
	GetByID(ctx context.Context, id string) (*entity.Playlist, error)
	GetViewByID(ctx context.Context, id string) (*entity.PlaylistView, error)
	ListForUser(ctx context.Context, userID string, includePrivate bool, page, limit int) (*pipeline.Page[entity.PlaylistView], error)
	Update(ctx context.Context, id, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error)
	Delete(ctx context.Context, id, ownerID string) error
	AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
	RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error)
}

type playlistRepository struct {
	db *surrealdb.DB
}

func NewPlaylistRepository(db *surrealdb.DB) PlaylistRepository {
	return &playlistRepository{db: db}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *entity.Playlist) error {
	id := recordID(model.PlaylistTable, uuid.New().String())
	doc := model.PlaylistDoc{
		ID:          &id,
		Name:        playlist.Name,
		Description: playlist.Description,
		IsPrivate:   playlist.IsPrivate,
		Owner:       recordID(model.UserTable, playlist.OwnerID),
		Videos:      []models.RecordID{},
		CreatedAt:   now(),
		UpdatedAt:   now(),
	}

	created, err := surrealdb.Create[model.PlaylistDoc](ctx, r.db, model.PlaylistTable, doc)
	if err != nil {
		return err
	}

	*playlist = *ToPlaylistEntity(created)
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id string) (*entity.Playlist, error) {
	doc, err := querySingle[model.PlaylistDoc](ctx, r.db,
		"SELECT * FROM playlist WHERE id = $id",
		map[string]interface{}{"id": recordID(model.PlaylistTable, id)})
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(doc), nil
}

func (r *playlistRepository) GetViewByID(ctx context.Context, id string) (*entity.PlaylistView, error) {
	p := r.viewPipeline().
		Match("id = $id").
		Bind("id", recordID(model.PlaylistTable, id)).
		Paginate(1, 1)

	doc, err := querySingle[model.PlaylistViewDoc](ctx, r.db, p.SelectQuery(), p.Vars())
	if err != nil {
		return nil, err
	}
	view := ToPlaylistViewEntity(doc)
	return &view, nil
}

func (r *playlistRepository) ListForUser(ctx context.Context, userID string, includePrivate bool, page, limit int) (*pipeline.Page[entity.PlaylistView], error) {
	p := r.viewPipeline().
		Match("owner = $owner").
		Bind("owner", recordID(model.UserTable, userID)).
		Paginate(page, limit)
	if !includePrivate {
		p.Match("is_private = false")
	}

	docs, err := pipeline.Execute[model.PlaylistViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToPlaylistViewEntity), nil
}

// viewPipeline projects playlists with their videos denormalized in stored
// order.
func (r *playlistRepository) viewPipeline() *pipeline.Pipeline {
	return pipeline.From(model.PlaylistTable).
		Project("id", "name", "description", "is_private", "owner", "created_at", "updated_at").
		Lookup("videos", "SELECT id, title, thumbnail, duration, is_published, "+
			"owner.{id, username, fullname, avatar} AS owner "+
			"FROM video WHERE id INSIDE $parent.videos")
}

func (r *playlistRepository) Update(ctx context.Context, id, ownerID, name, description string, isPrivate bool) (*entity.Playlist, error) {
	doc, err := querySingle[model.PlaylistDoc](ctx, r.db,
		"UPDATE playlist SET name = $name, description = $description, is_private = $is_private, updated_at = $now WHERE id = $id AND owner = $principal RETURN AFTER",
		map[string]interface{}{
			"id":          recordID(model.PlaylistTable, id),
			"principal":   recordID(model.UserTable, ownerID),
			"name":        name,
			"description": description,
			"is_private":  isPrivate,
			"now":         now(),
		})
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.PlaylistTable, id)
	}
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(doc), nil
}

func (r *playlistRepository) Delete(ctx context.Context, id, ownerID string) error {
	_, err := querySingle[model.PlaylistDoc](ctx, r.db,
		"DELETE playlist WHERE id = $id AND owner = $principal RETURN BEFORE",
		map[string]interface{}{
			"id":        recordID(model.PlaylistTable, id),
			"principal": recordID(model.UserTable, ownerID),
		})
	if err == ErrNotFound {
		return classifyMissing(ctx, r.db, model.PlaylistTable, id)
	}
	return err
}

func (r *playlistRepository) AddVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	doc, err := querySingle[model.PlaylistDoc](ctx, r.db,
		"UPDATE playlist SET videos = array::union(videos, [$video]), updated_at = $now WHERE id = $id AND owner = $principal AND $video NOTINSIDE videos RETURN AFTER",
		map[string]interface{}{
			"id":        recordID(model.PlaylistTable, id),
			"principal": recordID(model.UserTable, ownerID),
			"video":     recordID(model.VideoTable, videoID),
			"now":       now(),
		})
	if err == ErrNotFound {
		return nil, r.classifyVideoMutation(ctx, id, ownerID, true)
	}
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(doc), nil
}

func (r *playlistRepository) RemoveVideo(ctx context.Context, id, ownerID, videoID string) (*entity.Playlist, error) {
	doc, err := querySingle[model.PlaylistDoc](ctx, r.db,
		"UPDATE playlist SET videos = array::difference(videos, [$video]), updated_at = $now WHERE id = $id AND owner = $principal AND $video INSIDE videos RETURN AFTER",
		map[string]interface{}{
			"id":        recordID(model.PlaylistTable, id),
			"principal": recordID(model.UserTable, ownerID),
			"video":     recordID(model.VideoTable, videoID),
			"now":       now(),
		})
	if err == ErrNotFound {
		return nil, r.classifyVideoMutation(ctx, id, ownerID, false)
	}
	if err != nil {
		return nil, err
	}
	return ToPlaylistEntity(doc), nil
}

// classifyVideoMutation explains an empty add/remove result: missing
// playlist, foreign playlist, or the membership precondition failing.
func (r *playlistRepository) classifyVideoMutation(ctx context.Context, id, ownerID string, adding bool) error {
	playlist, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist.OwnerID != ownerID {
		return ErrForbidden
	}
	if adding {
		return ErrDuplicate
	}
	return ErrNotFound
}
