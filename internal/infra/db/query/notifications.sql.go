package query

import (
	"context"
)

const upsertNewsSubscription = `INSERT INTO news_subscriptions (email, news_type)
VALUES ($1, $2)
ON CONFLICT (email, news_type) DO NOTHING`

type UpsertNewsSubscriptionParams struct {
	Email    string
	NewsType string
}

func (q *Queries) UpsertNewsSubscription(ctx context.Context, db DBTX, arg UpsertNewsSubscriptionParams) error {
	_, err := db.Exec(ctx, upsertNewsSubscription, arg.Email, arg.NewsType)
	return err
}

const createNotificationJob = `INSERT INTO notification_jobs (id, kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) CreateNotificationJob(ctx context.Context, db DBTX, arg NotificationJob) error {
	_, err := db.Exec(ctx, createNotificationJob,
		arg.ID,
		arg.Kind,
		arg.Topic,
		arg.Payload,
		arg.RunAt,
		arg.Status,
	)
	return err
}
