package shift

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, s *Shift) error
	FindOpenByUser(ctx context.Context, userID string) (*Shift, error)
	FindByID(ctx context.Context, id string) (*Shift, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Shift, error)
	Close(ctx context.Context, id, userID string, clockOut time.Time, note *string) (int64, error)
	FindAllByUser(ctx context.Context, userID string) ([]Shift, error)
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

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindOpenByUser(ctx context.Context, userID string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND clock_out IS NULL", userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Close sets clock-out only while the shift is still open and owned by
// userID. Zero rows affected means another request closed it first.
func (r *repository) Close(ctx context.Context, id, userID string, clockOut time.Time, note *string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("id = ? AND user_id = ? AND clock_out IS NULL", id, userID).
		Updates(map[string]any{
			"clock_out":      clockOut,
			"clock_out_note": note,
			"updated_at":     gorm.Expr("now()"),
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindAllByUser(ctx context.Context, userID string) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("clock_in DESC").
		Find(&rows).Error
	return rows, err
}
