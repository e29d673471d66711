package organization

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_repo.go -destination=mock/organization_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, org *Organization) error
	FindByID(ctx context.Context, id string) (*Organization, error)
	FindFirst(ctx context.Context) (*Organization, error)
	Update(ctx context.Context, org *Organization) error
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

func (r *repository) Create(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Organization, error) {
	var org Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// FindFirst returns the oldest organization; used by the first-login bootstrap.
func (r *repository) FindFirst(ctx context.Context) (*Organization, error) {
	var org Organization
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *repository) Update(ctx context.Context, org *Organization) error {
	return r.db.WithContext(ctx).
		Model(&Organization{}).
		Where("id = ?", org.ID).
		Updates(map[string]any{
			"latitude":         org.Latitude,
			"longitude":        org.Longitude,
			"perimeter_radius": org.PerimeterRadius,
			"updated_at":       gorm.Expr("now()"),
		}).Error
}
