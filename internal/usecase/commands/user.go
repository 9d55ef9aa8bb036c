package commands

import (
	"context"

	"coupon-swap/internal/domain/user"
	"coupon-swap/internal/infra"
	"coupon-swap/internal/pkg/clock"
	"coupon-swap/internal/pkg/errs"
	"coupon-swap/internal/usecase/queries"
	"coupon-swap/internal/usecase/shared"
)

type UserCommands interface {
	Signup(ctx context.Context, cmd SignupUserCommand) (*queries.UserView, error)
	UpdatePreferences(ctx context.Context, cmd UpdatePreferencesCommand) (*queries.UserView, error)
}

type userUseCaseImpl struct {
	uow         shared.UnitOfWork
	userQueries queries.UserQueries
	clock       clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, userQueries queries.UserQueries, clock clock.Clock) UserCommands {
	return &userUseCaseImpl{
		uow:         uow,
		userQueries: userQueries,
		clock:       clock,
	}
}

func (u *userUseCaseImpl) Signup(ctx context.Context, cmd SignupUserCommand) (*queries.UserView, error) {
	entity, err := user.NewUser(cmd.Name, cmd.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), entity, u.clock.Now())
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view, err := u.userQueries.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *userUseCaseImpl) UpdatePreferences(ctx context.Context, cmd UpdatePreferencesCommand) (*queries.UserView, error) {
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated, err := tx.Users().UpdatePreferences(ctx, tx.DB(), cmd.UserID, cmd.PreferredPlatforms, cmd.PreferredCategories)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !updated {
			return errs.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := u.userQueries.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
