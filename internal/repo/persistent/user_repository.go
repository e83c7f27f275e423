package persistent

import (
	"context"
	"strings"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	UpdateRefreshToken(ctx context.Context, id, token string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdateAccount(ctx context.Context, id, fullname, email string) (*entity.User, error)
	UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error)
	UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error)
	GetChannelProfile(ctx context.Context, username, principalID string) (*entity.ChannelProfile, error)
	AddToWatchHistory(ctx context.Context, userID, videoID string) error
	GetWatchHistory(ctx context.Context, userID string, page, limit int) (*pipeline.Page[entity.VideoView], error)
}

type userRepository struct {
	db *surrealdb.DB
}

func NewUserRepository(db *surrealdb.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	id := recordID(model.UserTable, uuid.New().String())
	doc := model.UserDoc{
		ID:           &id,
		Username:     strings.ToLower(user.Username),
		Email:        user.Email,
		Fullname:     user.Fullname,
		Avatar:       user.Avatar,
		CoverImage:   user.CoverImage,
		Password:     user.Password,
		WatchHistory: []models.RecordID{},
		CreatedAt:    now(),
		UpdatedAt:    now(),
	}

	created, err := surrealdb.Create[model.UserDoc](ctx, r.db, model.UserTable, doc)
	if err != nil {
		if isUniqueIndexError(err) {
			return ErrDuplicate
		}
		return err
	}

	*user = *ToUserEntity(created)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := querySingle[model.UserDoc](ctx, r.db,
		"SELECT * FROM user WHERE id = $id",
		map[string]interface{}{"id": recordID(model.UserTable, id)})
	if err != nil {
		return nil, err
	}
	return ToUserEntity(doc), nil
}

func (r *userRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	doc, err := querySingle[model.UserDoc](ctx, r.db,
		"SELECT * FROM user WHERE username = $username OR email = $email",
		map[string]interface{}{
			"username": strings.ToLower(username),
			"email":    email,
		})
	if err != nil {
		return nil, err
	}
	return ToUserEntity(doc), nil
}

func (r *userRepository) UpdateRefreshToken(ctx context.Context, id, token string) error {
	return exec(ctx, r.db,
		"UPDATE user SET refresh_token = $token, updated_at = $now WHERE id = $id",
		map[string]interface{}{
			"id":    recordID(model.UserTable, id),
			"token": token,
			"now":   now(),
		})
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return exec(ctx, r.db,
		"UPDATE user SET password = $password, updated_at = $now WHERE id = $id",
		map[string]interface{}{
			"id":       recordID(model.UserTable, id),
			"password": passwordHash,
			"now":      now(),
		})
}

func (r *userRepository) UpdateAccount(ctx context.Context, id, fullname, email string) (*entity.User, error) {
	doc, err := querySingle[model.UserDoc](ctx, r.db,
		"UPDATE user SET fullname = $fullname, email = $email, updated_at = $now WHERE id = $id RETURN AFTER",
		map[string]interface{}{
			"id":       recordID(model.UserTable, id),
			"fullname": fullname,
			"email":    email,
			"now":      now(),
		})
	if err != nil {
		if isUniqueIndexError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return ToUserEntity(doc), nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatarURL string) (*entity.User, error) {
	return r.updateImage(ctx, id, "avatar", avatarURL)
}

func (r *userRepository) UpdateCoverImage(ctx context.Context, id, coverImageURL string) (*entity.User, error) {
	return r.updateImage(ctx, id, "cover_image", coverImageURL)
}

func (r *userRepository) updateImage(ctx context.Context, id, field, url string) (*entity.User, error) {
	doc, err := querySingle[model.UserDoc](ctx, r.db,
		"UPDATE user SET "+field+" = $url, updated_at = $now WHERE id = $id RETURN AFTER",
		map[string]interface{}{
			"id":  recordID(model.UserTable, id),
			"url": url,
			"now": now(),
		})
	if err != nil {
		return nil, err
	}
	return ToUserEntity(doc), nil
}

func (r *userRepository) GetChannelProfile(ctx context.Context, username, principalID string) (*entity.ChannelProfile, error) {
	p := pipeline.From(model.UserTable).
		Match("username = $username").
		Bind("username", strings.ToLower(username)).
		Bind("principal", principalRecord(principalID)).
		Project("id", "username", "email", "fullname", "avatar", "cover_image").
		AddField("array::len((SELECT id FROM subscription WHERE channel = $parent.id))", "subscribers_count").
		AddField("array::len((SELECT id FROM subscription WHERE subscriber = $parent.id))", "subscribed_to_count").
		AddField("array::len((SELECT id FROM subscription WHERE channel = $parent.id AND subscriber = $principal)) > 0", "is_subscribed").
		Paginate(1, 1)

	doc, err := querySingle[model.ChannelProfileDoc](ctx, r.db, p.SelectQuery(), p.Vars())
	if err != nil {
		return nil, err
	}
	return ToChannelProfileEntity(doc), nil
}

func (r *userRepository) AddToWatchHistory(ctx context.Context, userID, videoID string) error {
	return exec(ctx, r.db,
		"UPDATE user SET watch_history = array::union(watch_history, [$video]) WHERE id = $id",
		map[string]interface{}{
			"id":    recordID(model.UserTable, userID),
			"video": recordID(model.VideoTable, videoID),
		})
}

func (r *userRepository) GetWatchHistory(ctx context.Context, userID string, page, limit int) (*pipeline.Page[entity.VideoView], error) {
	p := pipeline.From(model.VideoTable).
		Match("id INSIDE (SELECT VALUE watch_history FROM ONLY $user)").
		Bind("user", recordID(model.UserTable, userID)).
		Project("id", "video_file", "thumbnail", "title", "description",
			"duration", "views", "is_published", "created_at", "updated_at").
		Paginate(page, limit)
	withOwner(p)
	withLikeState(p, "video", principalRecord(userID))

	docs, err := pipeline.Execute[model.VideoViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToVideoViewEntity), nil
}
