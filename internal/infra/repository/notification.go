package repository

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification.go -package=repositorymock

import (
	"context"
	"time"

	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const jobStatusQueued = "queued"

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db query.DBTX, arg query.NotificationJob) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx query.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	job := query.NotificationJob{
		ID:      uuid.New(),
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgtype.Timestamptz{Time: runAt, Valid: true},
		Status:  jobStatusQueued,
	}

	err := r.queries.CreateNotificationJob(ctx, tx, job)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}
