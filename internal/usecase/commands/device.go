package commands

import (
	"context"
	"strings"

	"recipe-scheduler/internal/pkg/clock"
	"recipe-scheduler/internal/pkg/errs"
	"recipe-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxDeviceTokenLength = 4096

var ErrInvalidDeviceToken = errs.New("invalid device token")

type DeviceCommands interface {
	Register(ctx context.Context, userID uuid.UUID, token, platform string) error
	Unregister(ctx context.Context, userID uuid.UUID, token string) error
}

type deviceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewDeviceCommands(uow shared.UnitOfWork, clk clock.Clock) DeviceCommands {
	return &deviceCommandsImpl{uow: uow, clock: clk}
}

// Register is an upsert; a token that moves to another account follows the new owner.
func (c *deviceCommandsImpl) Register(ctx context.Context, userID uuid.UUID, token, platform string) error {
	token = strings.TrimSpace(token)
	if token == "" || len(token) > maxDeviceTokenLength {
		return ErrInvalidDeviceToken
	}

	device := shared.DeviceToken{
		UserID:   userID,
		Token:    token,
		Platform: shared.ParseDevicePlatform(strings.ToLower(platform)),
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Upsert(ctx, tx.DB(), device, c.clock.Now())
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// Unregistering a token that is already gone succeeds.
func (c *deviceCommandsImpl) Unregister(ctx context.Context, userID uuid.UUID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidDeviceToken
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Devices().Delete(ctx, tx.DB(), userID, token)
	})
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
