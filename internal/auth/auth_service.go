package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/organization"
	"shift-tracker/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	DefaultPerimeterRadiusKm = 2.0
	bootstrapAttempts        = 2
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	ExchangeSession(ctx context.Context, idToken string) (SessionResponse, error)
}

type service struct {
	db       *gorm.DB
	tokens   *TokenManager
	userRepo user.Repository
	orgRepo  organization.Repository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	tokens *TokenManager,
	userRepo user.Repository,
	orgRepo organization.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:       db,
		tokens:   tokens,
		userRepo: userRepo,
		orgRepo:  orgRepo,
		logger:   l,
	}
}

// ExchangeSession trades a provider identity token for an access token. The
// first ever login creates an organization and makes the caller its manager;
// later unknown subjects join the oldest organization as care workers.
func (s *service) ExchangeSession(ctx context.Context, idToken string) (SessionResponse, error) {
	claims, err := s.tokens.ParseIdentityToken(idToken)
	if err != nil {
		return SessionResponse{}, err
	}

	u, err := s.resolveUser(ctx, claims)
	if err != nil {
		return SessionResponse{}, err
	}

	identity := domain.Identity{
		UserID:         u.ID.String(),
		OrganizationID: u.OrganizationID.String(),
		Role:           u.Role,
	}
	token, expiresAt, err := s.tokens.IssueAccessToken(identity)
	if err != nil {
		return SessionResponse{}, err
	}

	return SessionResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user.MapToResponse(*u),
	}, nil
}

func (s *service) resolveUser(ctx context.Context, claims IdentityClaims) (*user.User, error) {
	var lastErr error
	for attempt := 0; attempt < bootstrapAttempts; attempt++ {
		u, err := s.userRepo.FindByExternalID(ctx, claims.Subject)
		if err == nil {
			return u, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		u, err = s.bootstrapUser(ctx, claims)
		if err == nil {
			s.logger.Info("user bootstrapped",
				zap.String("user_id", u.ID.String()),
				zap.String("organization_id", u.OrganizationID.String()),
				zap.String("role", u.Role),
			)
			return u, nil
		}
		if !isBootstrapConflict(err) {
			s.logger.Error("bootstrap user failed", zap.String("subject", claims.Subject), zap.Error(err))
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (s *service) bootstrapUser(ctx context.Context, claims IdentityClaims) (*user.User, error) {
	var created *user.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgRepo := s.orgRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		role := domain.RoleCareWorker
		org, err := orgRepo.FindFirst(ctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			org = &organization.Organization{
				ID:              uuid.New(),
				Name:            organizationName(claims.Name),
				PerimeterRadius: DefaultPerimeterRadiusKm,
			}
			if err := orgRepo.Create(ctx, org); err != nil {
				return err
			}
			role = domain.RoleManager
		} else if err != nil {
			return err
		}

		created = &user.User{
			ID:             uuid.New(),
			ExternalID:     claims.Subject,
			Email:          emailOrFallback(claims),
			Role:           role,
			OrganizationID: org.ID,
		}
		return userRepo.Create(ctx, created)
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func organizationName(displayName string) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "My"
	}
	return fmt.Sprintf("%s Organization", name)
}

func emailOrFallback(claims IdentityClaims) string {
	if email := strings.TrimSpace(claims.Email); email != "" {
		return email
	}
	return claims.Subject + "@example.com"
}
