package user_test

import (
	"context"
	"testing"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/user"
	usererrors "shift-tracker/internal/user/errors"
	userMock "shift-tracker/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_GetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		id := uuid.New()
		orgID := uuid.New()
		repo.EXPECT().FindByID(ctx, id.String()).Return(&user.User{
			ID: id, Email: "nurse@example.com", Role: domain.RoleCareWorker, OrganizationID: orgID,
		}, nil)

		resp, err := svc.GetMe(ctx, domain.Identity{UserID: id.String(), OrganizationID: orgID.String()})
		assert.NoError(t, err)
		assert.Equal(t, "nurse@example.com", resp.Email)
		assert.Equal(t, orgID.String(), resp.OrganizationID)
	})

	t.Run("token for a deleted worker", func(t *testing.T) {
		id := uuid.NewString()
		repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.GetMe(ctx, domain.Identity{UserID: id})
		assert.ErrorIs(t, err, usererrors.ErrUnknownCaller)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.GetMe(ctx, domain.Identity{})
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestService_GetAllByOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := userMock.NewMockRepository(ctrl)
	svc := user.NewService(repo)
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("manager lists own organization only", func(t *testing.T) {
		manager := domain.Identity{UserID: uuid.NewString(), OrganizationID: orgID.String(), Role: domain.RoleManager}
		repo.EXPECT().FindAllByOrganization(ctx, orgID.String()).Return([]user.User{
			{ID: uuid.New(), Email: "a@example.com", OrganizationID: orgID},
			{ID: uuid.New(), Email: "b@example.com", OrganizationID: orgID},
		}, nil)

		resp, err := svc.GetAllByOrganization(ctx, manager)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("care worker is forbidden", func(t *testing.T) {
		worker := domain.Identity{UserID: uuid.NewString(), OrganizationID: orgID.String(), Role: domain.RoleCareWorker}
		_, err := svc.GetAllByOrganization(ctx, worker)
		assert.ErrorIs(t, err, usererrors.ErrManagerOnly)
	})
}
