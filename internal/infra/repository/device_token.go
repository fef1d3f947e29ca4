package repository

import (
	"context"
	"time"

	"recipe-scheduler/internal/infra"
	sqlc "recipe-scheduler/internal/infra/sqlc/generated"
	"recipe-scheduler/internal/pkg/pgconv"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

type DeviceTokenQueries interface {
	UpsertDeviceToken(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertDeviceTokenParams) error
	DeleteDeviceToken(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteDeviceTokenParams) (int64, error)
	DeleteDeviceTokens(ctx context.Context, db sqlc.DBTX, tokens []string) (int64, error)
}

type DeviceTokenRepository struct {
	queries DeviceTokenQueries
}

func NewDeviceTokenRepository(queries DeviceTokenQueries) *DeviceTokenRepository {
	return &DeviceTokenRepository{queries: queries}
}

func (r *DeviceTokenRepository) Upsert(ctx context.Context, tx sqlc.DBTX, device shared.DeviceToken, now time.Time) error {
	err := r.queries.UpsertDeviceToken(ctx, tx, sqlc.UpsertDeviceTokenParams{
		ID:        uuid.New(),
		UserID:    device.UserID,
		Token:     device.Token,
		Platform:  string(device.Platform),
		CreatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert device token", err)
	}
	return nil
}

func (r *DeviceTokenRepository) Delete(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, token string) error {
	_, err := r.queries.DeleteDeviceToken(ctx, tx, sqlc.DeleteDeviceTokenParams{
		Token:  token,
		UserID: userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to delete device token", err)
	}
	return nil
}

func (r *DeviceTokenRepository) DeleteTokens(ctx context.Context, tx sqlc.DBTX, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	n, err := r.queries.DeleteDeviceTokens(ctx, tx, tokens)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete device tokens", err)
	}
	return n, nil
}
