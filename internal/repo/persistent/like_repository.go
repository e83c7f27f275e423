package persistent

import (
	"context"
	"fmt"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type LikeRepository interface {
	// Toggle flips the principal's like on the target and reports whether a
	// like exists after the call.
	Toggle(ctx context.Context, principalID string, kind entity.LikeTargetKind, targetID string) (bool, error)
	GetLikedVideos(ctx context.Context, principalID string, page, limit int) (*pipeline.Page[entity.LikedVideo], error)
}

type likeRepository struct {
	db *surrealdb.DB
}

func NewLikeRepository(db *surrealdb.DB) LikeRepository {
	return &likeRepository{db: db}
}

// targetTable maps a like kind to the table holding the target record. The
// like table's link column shares the kind's name.
func targetTable(kind entity.LikeTargetKind) string {
	return string(kind)
}

func (r *likeRepository) Toggle(ctx context.Context, principalID string, kind entity.LikeTargetKind, targetID string) (bool, error) {
	table := targetTable(kind)
	target := recordID(table, targetID)
	principal := recordID(model.UserTable, principalID)

	exists, err := queryRows[model.OwnerDoc](ctx, r.db,
		fmt.Sprintf("SELECT id FROM %s WHERE id = $target", table),
		map[string]interface{}{"target": target})
	if err != nil {
		return false, err
	}
	if len(exists) == 0 {
		return false, ErrNotFound
	}

	// Delete-first toggle. The unique (liked_by, target) index turns a lost
	// race on the create side into a store error instead of a duplicate row.
	deleted, err := queryRows[model.LikeDoc](ctx, r.db,
		fmt.Sprintf("DELETE like WHERE liked_by = $principal AND %s = $target RETURN BEFORE", table),
		map[string]interface{}{
			"principal": principal,
			"target":    target,
		})
	if err != nil {
		return false, err
	}
	if len(deleted) > 0 {
		return false, nil
	}

	id := recordID(model.LikeTable, uuid.New().String())
	doc := model.LikeDoc{
		ID:        &id,
		LikedBy:   principal,
		CreatedAt: now(),
	}
	switch kind {
	case entity.LikeTargetVideo:
		doc.Video = &target
	case entity.LikeTargetComment:
		doc.Comment = &target
	case entity.LikeTargetTweet:
		doc.Tweet = &target
	default:
		return false, fmt.Errorf("unknown like target kind %q", kind)
	}

	if _, err := surrealdb.Create[model.LikeDoc](ctx, r.db, model.LikeTable, doc); err != nil {
		if isUniqueIndexError(err) {
			// A concurrent toggle won the create race; the like exists.
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *likeRepository) GetLikedVideos(ctx context.Context, principalID string, page, limit int) (*pipeline.Page[entity.LikedVideo], error) {
	principal := principalRecord(principalID)

	p := pipeline.From(model.LikeTable).
		Match("liked_by = $principal").
		Match("video != NONE").
		Match("video.is_published = true").
		Bind("principal", principal).
		Project("created_at AS liked_at").
		Lookup("video", likedVideoSubquery()).
		Paginate(page, limit)

	docs, err := pipeline.Execute[model.LikedVideoDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToLikedVideoEntity), nil
}

// likedVideoSubquery resolves the liked video's full view as a single
// object (FROM ONLY). is_liked is constant within the principal's own
// liked list.
func likedVideoSubquery() string {
	return "SELECT id, video_file, thumbnail, title, description, duration, views, is_published, " +
		"owner.{id, username, fullname, avatar} AS owner, " +
		"array::len((SELECT id FROM like WHERE video = $parent.id)) AS likes_count, " +
		"true AS is_liked, created_at, updated_at " +
		"FROM ONLY video WHERE id = $parent.video LIMIT 1"
}
