package repository

//go:generate mockgen -source=subscriber.go -destination=../../../tests/mock/repository/subscriber.go -package=repositorymock

import (
	"context"

	"club-booking/internal/domain/booking"
	"club-booking/internal/infra"
	"club-booking/internal/infra/db/query"
	"club-booking/internal/infra/repository/converter"
	"club-booking/internal/pkg/pgconv"
)

type SubscriberWriteQueries interface {
	FindSubscriberByContact(ctx context.Context, db query.DBTX, arg query.SubscriberContactParams) (query.EventSubscriber, error)
	InsertSubscriber(ctx context.Context, db query.DBTX, arg query.SubscriberContactParams) (int32, error)
	GetSubscriber(ctx context.Context, db query.DBTX, id int32) (query.EventSubscriber, error)
}

type SubscriberRepository struct {
	queries SubscriberWriteQueries
}

func NewSubscriberRepository(queries SubscriberWriteQueries) *SubscriberRepository {
	return &SubscriberRepository{queries: queries}
}

func (r *SubscriberRepository) FindByContact(ctx context.Context, tx query.DBTX, contact booking.Contact, member bool) (*booking.Subscriber, error) {
	row, err := r.queries.FindSubscriberByContact(ctx, tx, converter.ContactToParams(contact, member))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find subscriber", err)
	}
	return converter.SubscriberFromRow(row), nil
}

func (r *SubscriberRepository) Create(ctx context.Context, tx query.DBTX, contact booking.Contact, member bool) (*booking.Subscriber, error) {
	id, err := r.queries.InsertSubscriber(ctx, tx, converter.ContactToParams(contact, member))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create subscriber", err)
	}
	return &booking.Subscriber{ID: id, Contact: contact, Member: member}, nil
}

func (r *SubscriberRepository) FindByID(ctx context.Context, tx query.DBTX, id int32) (*booking.Subscriber, error) {
	row, err := r.queries.GetSubscriber(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get subscriber", err)
	}
	return converter.SubscriberFromRow(row), nil
}
