package persistent

import (
	"context"

	"streamtube/internal/entity"
	"streamtube/internal/model"
	"streamtube/internal/pipeline"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

type SubscriptionRepository interface {
	// Toggle flips the subscription and reports whether it exists after the
	// call. Self-subscription is rejected before this is reached.
	Toggle(ctx context.Context, subscriberID, channelID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.Subscriber], error)
	ListSubscribed(ctx context.Context, subscriberID string, page, limit int) (*pipeline.Page[entity.SubscribedChannel], error)
}

type subscriptionRepository struct {
	db *surrealdb.DB
}

func NewSubscriptionRepository(db *surrealdb.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Toggle(ctx context.Context, subscriberID, channelID string) (bool, error) {
	subscriber := recordID(model.UserTable, subscriberID)
	channel := recordID(model.UserTable, channelID)

	exists, err := queryRows[model.OwnerDoc](ctx, r.db,
		"SELECT id FROM user WHERE id = $channel",
		map[string]interface{}{"channel": channel})
	if err != nil {
		return false, err
	}
	if len(exists) == 0 {
		return false, ErrNotFound
	}

	deleted, err := queryRows[model.SubscriptionDoc](ctx, r.db,
		"DELETE subscription WHERE subscriber = $subscriber AND channel = $channel RETURN BEFORE",
		map[string]interface{}{
			"subscriber": subscriber,
			"channel":    channel,
		})
	if err != nil {
		return false, err
	}
	if len(deleted) > 0 {
		return false, nil
	}

	id := recordID(model.SubscriptionTable, uuid.New().String())
	doc := model.SubscriptionDoc{
		ID:         &id,
		Subscriber: subscriber,
		Channel:    channel,
		CreatedAt:  now(),
	}
	if _, err := surrealdb.Create[model.SubscriptionDoc](ctx, r.db, model.SubscriptionTable, doc); err != nil {
		if isUniqueIndexError(err) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

func (r *subscriptionRepository) ListSubscribers(ctx context.Context, channelID string, page, limit int) (*pipeline.Page[entity.Subscriber], error) {
	p := pipeline.From(model.SubscriptionTable).
		Match("channel = $channel").
		Bind("channel", recordID(model.UserTable, channelID)).
		Project("created_at AS subscribed_at").
		AddField("subscriber.{id, username, fullname, avatar}", "subscriber").
		Paginate(page, limit)

	docs, err := pipeline.Execute[model.SubscriberViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToSubscriberEntity), nil
}

func (r *subscriptionRepository) ListSubscribed(ctx context.Context, subscriberID string, page, limit int) (*pipeline.Page[entity.SubscribedChannel], error) {
	p := pipeline.From(model.SubscriptionTable).
		Match("subscriber = $subscriber").
		Bind("subscriber", recordID(model.UserTable, subscriberID)).
		Project("created_at AS subscribed_at").
		AddField("channel.{id, username, fullname, avatar}", "channel").
		Paginate(page, limit)

	docs, err := pipeline.Execute[model.SubscribedChannelViewDoc](ctx, r.db, p)
	if err != nil {
		return nil, err
	}
	return mapPage(docs, ToSubscribedChannelEntity), nil
}
