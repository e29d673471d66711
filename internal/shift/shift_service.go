package shift

import (
	"context"
	"database/sql"
	"errors"

	"shift-tracker/internal/domain"
	"shift-tracker/internal/events"
	"shift-tracker/internal/geofence"
	"shift-tracker/internal/messaging/kafka"
	"shift-tracker/internal/organization"
	shifterrors "shift-tracker/internal/shift/errors"
	"shift-tracker/internal/shared/apperror"
	"shift-tracker/internal/shared/clock"
	"shift-tracker/internal/shared/contextutil"
	"shift-tracker/internal/shared/numeric"
	"shift-tracker/internal/user"
	usererrors "shift-tracker/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const aggregateType = "shift"

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, actor domain.Identity, req ClockInRequest) (ShiftResponse, error)
	ClockOut(ctx context.Context, actor domain.Identity, shiftID string, req ClockOutRequest) (ShiftResponse, error)
	GetCurrent(ctx context.Context, actor domain.Identity) (*ShiftResponse, error)
	GetMine(ctx context.Context, actor domain.Identity) ([]ShiftResponse, error)
	GetByUser(ctx context.Context, actor domain.Identity, userID string) ([]ShiftResponse, error)
}

type service struct {
	db         *gorm.DB
	repo       Repository
	userRepo   user.Repository
	orgRepo    organization.Repository
	outboxRepo kafka.OutboxRepository
	clock      clock.Clock
	logger     *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	userRepo user.Repository,
	orgRepo organization.Repository,
	outboxRepo kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	if clk == nil {
		clk = clock.New()
	}
	return &service{
		db:         db,
		repo:       repo,
		userRepo:   userRepo,
		orgRepo:    orgRepo,
		outboxRepo: outboxRepo,
		clock:      clk,
		logger:     l,
	}
}

func serializable() *sql.TxOptions {
	return &sql.TxOptions{Isolation: sql.LevelSerializable}
}

func (s *service) ClockIn(ctx context.Context, actor domain.Identity, req ClockInRequest) (ShiftResponse, error) {
	if actor.IsAnonymous() {
		return ShiftResponse{}, apperror.ErrUnauthorized
	}
	log := contextutil.GetLogger(ctx, s.logger)

	var created *Shift
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shifts := s.repo.WithTx(tx)

		worker, err := s.userRepo.WithTx(tx).FindByIDForUpdate(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrUnknownCaller
			}
			return err
		}

		open, err := shifts.FindOpenByUser(ctx, worker.ID.String())
		if err == nil && open != nil {
			return shifterrors.ErrShiftAlreadyOpen
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		org, err := s.orgRepo.WithTx(tx).FindByID(ctx, worker.OrganizationID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shifterrors.ErrOrganizationMissing
			}
			return err
		}

		distance, err := geofence.Validate(req.Latitude, req.Longitude, org.Fence())
		if err != nil {
			return err
		}

		created = &Shift{
			ID:               uuid.New(),
			UserID:           worker.ID,
			ClockIn:          s.clock.Now().UTC(),
			ClockInLatitude:  req.Latitude,
			ClockInLongitude: req.Longitude,
			ClockInNote:      req.Note,
		}
		if err := shifts.Create(ctx, created); err != nil {
			return mapRepositoryError(err)
		}

		log.Debug("clock-in admitted",
			zap.String("user_id", actor.UserID),
			zap.Float64("distance_km", distance),
		)
		return s.enqueue(ctx, tx, events.ShiftClockedIn, *created, org.ID.String())
	}, serializable())
	if err != nil {
		if isSerializationFailure(err) {
			err = s.resolveClockInConflict(ctx, actor.UserID)
		}
		s.logRejection(log, "clock-in", actor, err)
		return ShiftResponse{}, err
	}

	log.Info("shift clocked in",
		zap.String("shift_id", created.ID.String()),
		zap.String("user_id", actor.UserID),
	)
	return mapToResponse(*created), nil
}

func (s *service) ClockOut(ctx context.Context, actor domain.Identity, shiftID string, req ClockOutRequest) (ShiftResponse, error) {
	if actor.IsAnonymous() {
		return ShiftResponse{}, apperror.ErrUnauthorized
	}
	if _, err := uuid.Parse(shiftID); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidShiftID
	}
	log := contextutil.GetLogger(ctx, s.logger)

	var closed *Shift
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		shifts := s.repo.WithTx(tx)

		current, err := shifts.FindByIDForUpdate(ctx, shiftID)
		if err != nil {
			return mapRepositoryError(err)
		}
		// A closed shift reports AlreadyClosed to every caller.
		if !current.IsOpen() {
			return shifterrors.ErrShiftAlreadyClosed
		}
		if current.UserID.String() != actor.UserID {
			return shifterrors.ErrShiftForbidden
		}

		clockOut := s.clock.Now().UTC()
		if clockOut.Before(current.ClockIn) {
			clockOut = current.ClockIn
		}

		affected, err := shifts.Close(ctx, shiftID, actor.UserID, clockOut, req.Note)
		if err != nil {
			return err
		}
		if affected == 0 {
			return shifterrors.ErrShiftAlreadyClosed
		}

		current.ClockOut = &clockOut
		current.ClockOutNote = req.Note
		closed = current
		return s.enqueue(ctx, tx, events.ShiftClockedOut, *closed, actor.OrganizationID)
	}, serializable())
	if err != nil {
		if isSerializationFailure(err) {
			err = s.resolveClockOutConflict(ctx, shiftID)
		}
		s.logRejection(log, "clock-out", actor, err)
		return ShiftResponse{}, err
	}

	log.Info("shift clocked out",
		zap.String("shift_id", closed.ID.String()),
		zap.String("user_id", actor.UserID),
	)
	return mapToResponse(*closed), nil
}

// GetCurrent returns nil without error when the caller has no open shift.
func (s *service) GetCurrent(ctx context.Context, actor domain.Identity) (*ShiftResponse, error) {
	if actor.IsAnonymous() {
		return nil, apperror.ErrUnauthorized
	}

	open, err := s.repo.FindOpenByUser(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	res := mapToResponse(*open)
	return &res, nil
}

func (s *service) GetMine(ctx context.Context, actor domain.Identity) ([]ShiftResponse, error) {
	if actor.IsAnonymous() {
		return nil, apperror.ErrUnauthorized
	}

	rows, err := s.repo.FindAllByUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByUser(ctx context.Context, actor domain.Identity, userID string) ([]ShiftResponse, error) {
	if actor.IsAnonymous() {
		return nil, apperror.ErrUnauthorized
	}
	if !actor.IsManager() {
		return nil, shifterrors.ErrManagerOnly
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, shifterrors.ErrInvalidUserID
	}

	target, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shifterrors.ErrUserShiftsForbidden
		}
		return nil, err
	}
	if target.OrganizationID.String() != actor.OrganizationID {
		s.logger.Warn("cross-organization shift history rejected",
			zap.String("actor_id", actor.UserID),
			zap.String("target_user_id", userID),
		)
		return nil, shifterrors.ErrUserShiftsForbidden
	}

	rows, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

// resolveClockInConflict re-reads committed state after a 40001 abort. The
// abort may come from another worker's insert on the same index page, so
// AlreadyOpen is reported only when an open shift really exists.
func (s *service) resolveClockInConflict(ctx context.Context, userID string) error {
	open, err := s.repo.FindOpenByUser(ctx, userID)
	if err == nil && open != nil {
		return shifterrors.ErrShiftAlreadyOpen
	}
	return shifterrors.ErrConcurrentUpdate
}

func (s *service) resolveClockOutConflict(ctx context.Context, shiftID string) error {
	current, err := s.repo.FindByID(ctx, shiftID)
	if err == nil && current != nil && !current.IsOpen() {
		return shifterrors.ErrShiftAlreadyClosed
	}
	return shifterrors.ErrConcurrentUpdate
}

func (s *service) enqueue(ctx context.Context, tx *gorm.DB, eventType string, sh Shift, organizationID string) error {
	payload := events.ShiftLifecycleEvent{
		EventType:      eventType,
		ShiftID:        sh.ID.String(),
		UserID:         sh.UserID.String(),
		OrganizationID: organizationID,
		ClockIn:        sh.ClockIn,
		ClockOut:       sh.ClockOut,
		OccurredAt:     s.clock.Now().UTC(),
	}

	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		aggregateType,
		sh.ID.String(),
		eventType,
		events.ShiftLifecycleTopic,
		payload,
	)
	if err != nil {
		return err
	}
	// One partition per organization keeps its cache evictions in order.
	event.PartitionKey = organizationID
	return s.outboxRepo.WithTx(tx).Create(ctx, event)
}

func (s *service) logRejection(log *zap.Logger, op string, actor domain.Identity, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		log.Warn(op+" rejected",
			zap.String("user_id", actor.UserID),
			zap.String("code", appErr.Code),
			zap.String("reason", appErr.Message),
		)
		return
	}
	log.Error(op+" failed", zap.String("user_id", actor.UserID), zap.Error(err))
}

func mapToResponse(sh Shift) ShiftResponse {
	res := ShiftResponse{
		ID:               sh.ID.String(),
		UserID:           sh.UserID.String(),
		Status:           StatusOpen,
		ClockIn:          sh.ClockIn,
		ClockInLatitude:  sh.ClockInLatitude,
		ClockInLongitude: sh.ClockInLongitude,
		ClockInNote:      sh.ClockInNote,
		ClockOut:         sh.ClockOut,
		ClockOutNote:     sh.ClockOutNote,
	}
	if hours, ok := sh.DurationHours(); ok {
		rounded := numeric.Round2(hours)
		res.Status = StatusClosed
		res.DurationHours = &rounded
	}
	return res
}

func mapToListResponse(rows []Shift) []ShiftResponse {
	res := make([]ShiftResponse, len(rows))
	for i, sh := range rows {
		res[i] = mapToResponse(sh)
	}
	return res
}
