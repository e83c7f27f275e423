package persistent

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	ListForVideo(ctx context.Context, videoID, principalID string, page, limit int) (*pipeline.Page[entity.CommentView], error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type commentRepository struct {
	db *surrealdb.DB
}

func NewCommentRepository(db *surrealdb.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	id := recordID(model.CommentTable, uuid.New().String())
	doc := model.CommentDoc{
		ID:        &id,
		Content:   comment.Content,
		Video:     recordID(model.VideoTable, comment.VideoID),
		Owner:     recordID(model.UserTable, comment.OwnerID),
		CreatedAt: now(),
		UpdatedAt: now(),
	}

	created, err := surrealdb.Create[model.CommentDoc](ctx, r.db, model.CommentTable, doc)
	if err != nil {
		return err
	}

	*comment = *ToCommentEntity(created)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	doc, err := querySingle[model.CommentDoc](ctx, r.db,
		"SELECT * FROM comment WHERE id = $id",
		map[string]interface{}{"id": recordID(model.CommentTable, id)})
	if err != nil {
		return nil, err
	}
	return ToCommentEntity(doc), nil
}

func (r *commentRepository) ListForVideo(ctx context.Context, videoID, principalID string, page, limit int) (*pipeline.Page[entity.CommentView], error) {
	p := pipeline.From(model.CommentTable).
		Match("video = $video").
		Bind("video", recordID(model.VideoTable, videoID)).
		Project("id", "content", "created_at", "updated_at").
		Paginate(page, limit)
	withOwner(p)
	withLikeState(p, "comment", principalRecord(principalID))

	docs, err := pipeline.Execute[model.CommentViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToCommentViewEntity), nil
}

func (r *commentRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Comment, error) {
	doc, err := querySingle[model.CommentDoc](ctx, r.db,
		"UPDATE comment SET content = $content, updated_at = $now WHERE id = $id AND owner = $principal RETURN AFTER",
		map[string]interface{}{
			"id":        recordID(model.CommentTable, id),
			"principal": recordID(model.UserTable, ownerID),
			"content":   content,
			"now":       now(),
		})
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.CommentTable, id)
	}
	if err != nil {
		return nil, err
	}
	return ToCommentEntity(doc), nil
}

func (r *commentRepository) Delete(ctx context.Context, id, ownerID string) error {
	vars := map[string]interface{}{
		"id":        recordID(model.CommentTable, id),
		"principal": recordID(model.UserTable, ownerID),
	}

	_, err := querySingle[model.CommentDoc](ctx, r.db,
		"DELETE comment WHERE id = $id AND owner = $principal RETURN BEFORE", vars)
	if err == ErrNotFound {
		return classifyMissing(ctx, r.db, model.CommentTable, id)
	}
	if err != nil {
		return err
	}

	return exec(ctx, r.db, "DELETE like WHERE comment = $id", vars)
}
