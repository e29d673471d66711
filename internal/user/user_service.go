package user

import (
	"context"
	"errors"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	usererrors "shift-tracker/internal/user/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetMe(ctx context.Context, actor domain.Identity) (UserResponse, error)
	GetAllByOrganization(ctx context.Context, actor domain.Identity) ([]UserResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetMe(ctx context.Context, actor domain.Identity) (UserResponse, error) {
	if actor.IsAnonymous() {
		return UserResponse{}, apperror.ErrUnauthorized
	}

	u, err := s.repo.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUnknownCaller
		}
		s.logger.Error("get me failed", zap.String("user_id", actor.UserID), zap.Error(err))
		return UserResponse{}, err
	}
	return MapToResponse(*u), nil
}

func (s *service) GetAllByOrganization(ctx context.Context, actor domain.Identity) ([]UserResponse, error) {
	if actor.IsAnonymous() {
		return nil, apperror.ErrUnauthorized
	}
	if !actor.IsManager() {
		return nil, usererrors.ErrManagerOnly
	}

	rows, err := s.repo.FindAllByOrganization(ctx, actor.OrganizationID)
	if err != nil {
		s.logger.Error("list organization users failed",
			zap.String("organization_id", actor.OrganizationID),
			zap.Error(err),
		)
		return nil, err
	}
	return MapToListResponse(rows), nil
}

func MapToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		Role:           u.Role,
		OrganizationID: u.OrganizationID.String(),
	}
}

func MapToListResponse(rows []User) []UserResponse {
	res := make([]UserResponse, len(rows))
	for i, u := range rows {
		res[i] = MapToResponse(u)
	}
	return res
}
