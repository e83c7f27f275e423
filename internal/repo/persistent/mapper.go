package persistent

import (
	"context"
	"fmt"
	"time"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// anonymousPrincipal is a record id that matches no user row, so
// principal-relative booleans render false for unauthenticated requests.
var anonymousPrincipal = models.NewRecordID(model.UserTable, "none")

func recordID(table, id string) models.RecordID {
	return models.NewRecordID(table, id)
}

func ridString(id *models.RecordID) string {
	if id == nil {
		return ""
	}
	return fmt.Sprint(id.ID)
}

func principalRecord(userID string) models.RecordID {
	if userID == "" {
		return anonymousPrincipal
	}
	return recordID(model.UserTable, userID)
}

func now() models.CustomDateTime {
	return models.CustomDateTime{Time: time.Now().UTC()}
}

// querySingle runs sql and returns the first row of the first statement,
// or ErrNotFound when the result set is empty.
func querySingle[T any](ctx context.Context, db *surrealdb.DB, sql string, vars map[string]interface{}) (*T, error) {
	rows, err := queryRows[T](ctx, db, sql, vars)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func queryRows[T any](ctx context.Context, db *surrealdb.DB, sql string, vars map[string]interface{}) ([]T, error) {
	res, err := surrealdb.Query[[]T](ctx, db, sql, vars)
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[0].Result, nil
}

func exec(ctx context.Context, db *surrealdb.DB, sql string, vars map[string]interface{}) error {
	_, err := surrealdb.Query[any](ctx, db, sql, vars)
	return err
}

// classifyMissing resolves why a conditional owner-gated mutation matched
// nothing: the record either never existed or belongs to someone else.
func classifyMissing(ctx context.Context, db *surrealdb.DB, table, id string) error {
	rows, err := queryRows[model.OwnerDoc](ctx, db,
		fmt.Sprintf("SELECT id FROM %s WHERE id = $id", table),
		map[string]interface{}{"id": recordID(table, id)})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return ErrForbidden
}

// withOwner embeds the owner's public projection into each row.
func withOwner(p *pipeline.Pipeline) *pipeline.Pipeline {
	return p.AddField("owner.{id, username, fullname, avatar}", "owner")
}

// withLikeState adds likes_count and the principal-relative is_liked flag.
// column is the like table's link column for this target kind.
func withLikeState(p *pipeline.Pipeline, column string, principal models.RecordID) *pipeline.Pipeline {
	p.AddField(fmt.Sprintf("array::len((SELECT id FROM like WHERE %s = $parent.id))", column), "likes_count")
	p.AddField(fmt.Sprintf("array::len((SELECT id FROM like WHERE %s = $parent.id AND liked_by = $principal)) > 0", column), "is_liked")
	return p.Bind("principal", principal)
}

func mapPage[D, E any](p *pipeline.Page[D], convert func(*D) E) *pipeline.Page[E] {
	items := make([]E, len(p.Items))
	for i := range p.Items {
		items[i] = convert(&p.Items[i])
	}
	return &pipeline.Page[E]{
		Items:      items,
		TotalCount: p.TotalCount,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages,
	}
}

func ToUserEntity(d *model.UserDoc) *entity.User {
	if d == nil {
		return nil
	}
	return &entity.User{
		ID:           ridString(d.ID),
		Username:     d.Username,
		Email:        d.Email,
		Fullname:     d.Fullname,
		Avatar:       d.Avatar,
		CoverImage:   d.CoverImage,
		Password:     d.Password,
		RefreshToken: d.RefreshToken,
		CreatedAt:    d.CreatedAt.Time,
		UpdatedAt:    d.UpdatedAt.Time,
	}
}

func ToOwnerInfo(d model.OwnerDoc) entity.OwnerInfo {
	return entity.OwnerInfo{
		ID:       ridString(d.ID),
		Username: d.Username,
		Fullname: d.Fullname,
		Avatar:   d.Avatar,
	}
}

func ToChannelProfileEntity(d *model.ChannelProfileDoc) *entity.ChannelProfile {
	if d == nil {
		return nil
	}
	return &entity.ChannelProfile{
		ID:                ridString(d.ID),
		Username:          d.Username,
		Email:             d.Email,
		Fullname:          d.Fullname,
		Avatar:            d.Avatar,
		CoverImage:        d.CoverImage,
		SubscribersCount:  d.SubscribersCount,
		SubscribedToCount: d.SubscribedToCount,
		IsSubscribed:      d.IsSubscribed,
	}
}

func ToVideoEntity(d *model.VideoDoc) *entity.Video {
	if d == nil {
		return nil
	}
	return &entity.Video{
		ID:          ridString(d.ID),
		OwnerID:     fmt.Sprint(d.Owner.ID),
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   d.UpdatedAt.Time,
	}
}

func ToVideoViewEntity(d *model.VideoViewDoc) entity.VideoView {
	if d == nil {
		return entity.VideoView{}
	}
	return entity.VideoView{
		ID:          ridString(d.ID),
		Owner:       ToOwnerInfo(d.Owner),
		VideoFile:   d.VideoFile,
		Thumbnail:   d.Thumbnail,
		Title:       d.Title,
		Description: d.Description,
		Duration:    d.Duration,
		Views:       d.Views,
		IsPublished: d.IsPublished,
		LikesCount:  d.LikesCount,
		IsLiked:     d.IsLiked,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   d.UpdatedAt.Time,
	}
}

func ToCommentEntity(d *model.CommentDoc) *entity.Comment {
	if d == nil {
		return nil
	}
	return &entity.Comment{
		ID:        ridString(d.ID),
		Content:   d.Content,
		VideoID:   fmt.Sprint(d.Video.ID),
		OwnerID:   fmt.Sprint(d.Owner.ID),
		CreatedAt: d.CreatedAt.Time,
		UpdatedAt: d.UpdatedAt.Time,
	}
}

func ToCommentViewEntity(d *model.CommentViewDoc) entity.CommentView {
	if d == nil {
		return entity.CommentView{}
	}
	return entity.CommentView{
		ID:         ridString(d.ID),
		Content:    d.Content,
		Owner:      ToOwnerInfo(d.Owner),
		LikesCount: d.LikesCount,
		IsLiked:    d.IsLiked,
		CreatedAt:  d.CreatedAt.Time,
		UpdatedAt:  d.UpdatedAt.Time,
	}
}

func ToLikedVideoEntity(d *model.LikedVideoDoc) entity.LikedVideo {
	if d == nil {
		return entity.LikedVideo{}
	}
	return entity.LikedVideo{
		Video:   ToVideoViewEntity(&d.Video),
		LikedAt: d.LikedAt.Time,
	}
}

func ToSubscriberEntity(d *model.SubscriberViewDoc) entity.Subscriber {
	if d == nil {
		return entity.Subscriber{}
	}
	return entity.Subscriber{
		Subscriber:   ToOwnerInfo(d.Subscriber),
		SubscribedAt: d.SubscribedAt.Time,
	}
}

func ToSubscribedChannelEntity(d *model.SubscribedChannelViewDoc) entity.SubscribedChannel {
	if d == nil {
		return entity.SubscribedChannel{}
	}
	return entity.SubscribedChannel{
		Channel:      ToOwnerInfo(d.Channel),
		SubscribedAt: d.SubscribedAt.Time,
	}
}

func ToPlaylistEntity(d *model.PlaylistDoc) *entity.Playlist {
	if d == nil {
		return nil
	}
	videoIDs := make([]string, len(d.Videos))
	for i := range d.Videos {
		videoIDs[i] = fmt.Sprint(d.Videos[i].ID)
	}
	return &entity.Playlist{
		ID:          ridString(d.ID),
		Name:        d.Name,
		Description: d.Description,
		IsPrivate:   d.IsPrivate,
		OwnerID:     fmt.Sprint(d.Owner.ID),
		VideoIDs:    videoIDs,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   d.UpdatedAt.Time,
	}
}

func ToPlaylistVideoEntity(d *model.PlaylistVideoDoc) entity.PlaylistVideo {
	if d == nil {
		return entity.PlaylistVideo{}
	}
	return entity.PlaylistVideo{
		ID:          ridString(d.ID),
		Title:       d.Title,
		Thumbnail:   d.Thumbnail,
		Duration:    d.Duration,
		IsPublished: d.IsPublished,
		Owner:       ToOwnerInfo(d.Owner),
	}
}

func ToPlaylistViewEntity(d *model.PlaylistViewDoc) entity.PlaylistView {
	if d == nil {
		return entity.PlaylistView{}
	}
	videos := make([]entity.PlaylistVideo, len(d.Videos))
	for i := range d.Videos {
		videos[i] = ToPlaylistVideoEntity(&d.Videos[i])
	}
	return entity.PlaylistView{
		ID:          ridString(d.ID),
		Name:        d.Name,
		Description: d.Description,
		IsPrivate:   d.IsPrivate,
		OwnerID:     fmt.Sprint(d.Owner.ID),
		Videos:      videos,
		CreatedAt:   d.CreatedAt.Time,
		UpdatedAt:   d.UpdatedAt.Time,
	}
}

func ToTweetEntity(d *model.TweetDoc) *entity.Tweet {
	if d == nil {
		return nil
	}
	return &entity.Tweet{
		ID:        ridString(d.ID),
		Content:   d.Content,
		OwnerID:   fmt.Sprint(d.Owner.ID),
		CreatedAt: d.CreatedAt.Time,
		UpdatedAt: d.UpdatedAt.Time,
	}
}

func ToTweetViewEntity(d *model.TweetViewDoc) entity.TweetView {
	if d == nil {
		return entity.TweetView{}
	}
	return entity.TweetView{
		ID:         ridString(d.ID),
		Content:    d.Content,
		Owner:      ToOwnerInfo(d.Owner),
		LikesCount: d.LikesCount,
		IsLiked:    d.IsLiked,
		CreatedAt:  d.CreatedAt.Time,
		UpdatedAt:  d.UpdatedAt.Time,
	}
}
