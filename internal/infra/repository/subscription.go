package repository

//go:generate mockgen -source=subscription.go -destination=../../../tests/mock/repository/subscription.go -package=repositorymock

import (
	"context"

	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
)

type SubscriptionWriteQueries interface {
	UpsertNewsSubscription(ctx context.Context, db query.DBTX, arg query.UpsertNewsSubscriptionParams) error
}

type SubscriptionRepository struct {
	queries SubscriptionWriteQueries
}

func NewSubscriptionRepository(queries SubscriptionWriteQueries) *SubscriptionRepository {
	return &SubscriptionRepository{queries: queries}
}

// Subscribe is idempotent per (email, newsType).
func (r *SubscriptionRepository) Subscribe(ctx context.Context, tx query.DBTX, email, newsType string) error {
	err := r.queries.UpsertNewsSubscription(ctx, tx, query.UpsertNewsSubscriptionParams{
		Email:    email,
		NewsType: newsType,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to subscribe to news", err)
	}
	return nil
}
