package organization

import (
	"context"
	"errors"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/geofence"
	organizationerrors "shift-tracker/internal/organization/errors"
	"shift-tracker/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, actor domain.Identity) (OrganizationResponse, error)
	UpdateGeoFence(ctx context.Context, actor domain.Identity, orgID string, req UpdateGeoFenceRequest) (OrganizationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("organization.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("organization.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Get(ctx context.Context, actor domain.Identity) (OrganizationResponse, error) {
	if actor.IsAnonymous() {
		return OrganizationResponse{}, apperror.ErrUnauthorized
	}

	org, err := s.repo.FindByID(ctx, actor.OrganizationID)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*org), nil
}

func (s *service) UpdateGeoFence(
	ctx context.Context,
	actor domain.Identity,
	orgID string,
	req UpdateGeoFenceRequest,
) (OrganizationResponse, error) {
	if actor.IsAnonymous() {
		return OrganizationResponse{}, apperror.ErrUnauthorized
	}
	if !actor.IsManager() {
		return OrganizationResponse{}, organizationerrors.ErrManagerOnly
	}
	if _, err := uuid.Parse(orgID); err != nil {
		return OrganizationResponse{}, organizationerrors.ErrInvalidOrganizationID
	}
	if orgID != actor.OrganizationID {
		s.logger.Warn("geofence update on foreign organization rejected",
			zap.String("actor_id", actor.UserID),
			zap.String("actor_organization_id", actor.OrganizationID),
			zap.String("organization_id", orgID),
		)
		return OrganizationResponse{}, organizationerrors.ErrOrganizationForbidden
	}
	if req.Latitude == nil || req.Longitude == nil || req.PerimeterRadius == nil {
		return OrganizationResponse{}, apperror.ErrInvalidInput
	}

	fence := geofence.Fence{
		Center:   geofence.Point{Latitude: *req.Latitude, Longitude: *req.Longitude},
		RadiusKm: *req.PerimeterRadius,
	}
	if err := geofence.ValidateFence(fence); err != nil {
		return OrganizationResponse{}, err
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return OrganizationResponse{}, mapRepositoryError(err)
	}

	org.Latitude = fence.Center.Latitude
	org.Longitude = fence.Center.Longitude
	org.PerimeterRadius = fence.RadiusKm

	if err := s.repo.Update(ctx, org); err != nil {
		s.logger.Error("update geofence persist failed", zap.String("organization_id", orgID), zap.Error(err))
		return OrganizationResponse{}, err
	}

	s.logger.Info("organization geofence updated",
		zap.String("organization_id", orgID),
		zap.Float64("latitude", org.Latitude),
		zap.Float64("longitude", org.Longitude),
		zap.Float64("perimeter_radius_km", org.PerimeterRadius),
	)
	return mapToResponse(*org), nil
}

func mapRepositoryError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return organizationerrors.ErrOrganizationNotFound
	}
	return err
}

func mapToResponse(o Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:              o.ID.String(),
		Name:            o.Name,
		Latitude:        o.Latitude,
		Longitude:       o.Longitude,
		PerimeterRadius: o.PerimeterRadius,
	}
}
