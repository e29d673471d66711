package user

import (
	"context"

	"shift-tracker/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByIDForUpdate(ctx context.Context, id string) (*User, error)
	FindByExternalID(ctx context.Context, externalID string) (*User, error)
	FindAllByOrganization(ctx context.Context, organizationID string) ([]User, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// FindByIDForUpdate row-locks the worker for the rest of the transaction,
// serializing lifecycle transitions of the same worker.
func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByExternalID(ctx context.Context, externalID string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAllByOrganization(ctx context.Context, organizationID string) ([]User, error) {
	var rows []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(organizationID)).
		Order("email ASC").
		Find(&rows).Error
	return rows, err
}
