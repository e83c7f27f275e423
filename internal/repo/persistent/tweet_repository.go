package persistent

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *entity.Tweet) error
	ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.TweetView], error)
	Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error)
	Delete(ctx context.Context, id, ownerID string) error
}

type tweetRepository struct {
	db *surrealdb.DB
}

func NewTweetRepository(db *surrealdb.DB) TweetRepository {
	return &tweetRepository{db: db}
}

func (r *tweetRepository) Create(ctx context.Context, tweet *entity.Tweet) error {
	id := recordID(model.TweetTable, uuid.New().String())
	doc := model.TweetDoc{
		ID:        &id,
		Content:   tweet.Content,
		Owner:     recordID(model.UserTable, tweet.OwnerID),
		CreatedAt: now(),
		UpdatedAt: now(),
	}

	created, err := surrealdb.Create[model.TweetDoc](ctx, r.db, model.TweetTable, doc)
	if err != nil {
		return err
	}

	*tweet = *ToTweetEntity(created)
	return nil
}

func (r *tweetRepository) ListForUser(ctx context.Context, userID, principalID string, page, limit int) (*pipeline.Page[entity.TweetView], error) {
	p := pipeline.From(model.TweetTable).
		Match("owner = $owner").
		Bind("owner", recordID(model.UserTable, userID)).
		Project("id", "content", "created_at", "updated_at").
		Paginate(page, limit)
	withOwner(p)
	withLikeState(p, "tweet", principalRecord(principalID))

	docs, err := pipeline.Execute[model.TweetViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToTweetViewEntity), nil
}

func (r *tweetRepository) Update(ctx context.Context, id, ownerID, content string) (*entity.Tweet, error) {
	doc, err := querySingle[model.TweetDoc](ctx, r.db,
		"UPDATE tweet SET content = $content, updated_at = $now WHERE id = $id AND owner = $principal RETURN AFTER",
		map[string]interface{}{
			"id":        recordID(model.TweetTable, id),
			"principal": recordID(model.UserTable, ownerID),
			"content":   content,
			"now":       now(),
		})
	if err == ErrNotFound {
		return nil, classifyMissing(ctx, r.db, model.TweetTable, id)
	}
	if err != nil {
		return nil, err
	}
	return ToTweetEntity(doc), nil
}

func (r *tweetRepository) Delete(ctx context.Context, id, ownerID string) error {
	vars := map[string]interface{}{
		"id":        recordID(model.TweetTable, id),
		"principal": recordID(model.UserTable, ownerID),
	}

	_, err := querySingle[model.TweetDoc](ctx, r.db,
		"DELETE tweet WHERE id = $id AND owner = $principal RETURN BEFORE", vars)
	if err == ErrNotFound {
		return classifyMissing(ctx, r.db, model.TweetTable, id)
	}
	if err != nil {
		return err
	}

	return exec(ctx, r.db, "DELETE like WHERE tweet = $id", vars)
}
