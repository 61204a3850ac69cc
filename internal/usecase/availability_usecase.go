package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/service"
	"clinic-scheduling-api/pkg/interval"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWindowNotFound  = errors.New("availability window not found")
	ErrInvalidInterval = errors.New("start time must be before end time")
	ErrWindowConflict  = errors.New("window overlaps an existing availability window")
)

// WindowConflictError carries the id of the offending window for diagnostics.
// errors.Is(err, ErrWindowConflict) matches it.
type WindowConflictError struct {
	ConflictingID uuid.UUID
}

func (e *WindowConflictError) Error() string {
	if e.ConflictingID == uuid.Nil {
		return ErrWindowConflict.Error()
	}
	return fmt.Sprintf("window overlaps existing availability window %s", e.ConflictingID)
}

func (e *WindowConflictError) Is(target error) bool {
	return target == ErrWindowConflict
}

type AvailabilityUsecase interface {
	CreateWindow(ctx context.Context, req *dto.CreateWindowRequest, actor entity.Actor) (*dto.WindowResponse, error)
	GetWindow(ctx context.Context, windowID uuid.UUID) (*dto.WindowResponse, error)
	ListWindows(ctx context.Context, query *dto.WindowQuery) (*dto.WindowListResponse, error)
	UpdateWindow(ctx context.Context, windowID uuid.UUID, req *dto.UpdateWindowRequest, actor entity.Actor) (*dto.WindowResponse, error)
	DeactivateWindow(ctx context.Context, windowID uuid.UUID, actor entity.Actor) error
	DeleteWindow(ctx context.Context, windowID uuid.UUID, actor entity.Actor) error
}

type availabilityUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	windowRepo repository.AvailabilityWindowRepository
	userRepo   repository.UserRepository
	roomRepo   repository.RoomRepository
	audit      service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	windowRepo repository.AvailabilityWindowRepository,
	userRepo repository.UserRepository,
	roomRepo repository.RoomRepository,
	audit service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:         db,
		log:        log,
		windowRepo: windowRepo,
		userRepo:   userRepo,
		roomRepo:   roomRepo,
		audit:      audit,
	}
}

// CreateWindow validates the professional, the room and the interval, then
// admits the window only if it overlaps no active window sharing the
// professional or the room on the same weekday. The scan and the insert run
// inside one serializable transaction guarded by advisory locks.
func (u *availabilityUsecase) CreateWindow(ctx context.Context, req *dto.CreateWindowRequest, actor entity.Actor) (*dto.WindowResponse, error) {
	day, err := entity.ParseWeekday(req.DayOfWeek)
	if err != nil {
		return nil, err
	}

	span, err := interval.NewSpan(req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, interval.ErrEmptySpan) {
			return nil, ErrInvalidInterval
		}
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if _, err := resolveProfessional(tx, u.userRepo, req.ProfessionalID); err != nil {
		return nil, err
	}
	if _, err := resolveRoom(tx, u.roomRepo, req.RoomID); err != nil {
		return nil, err
	}

	if err := acquireAdvisoryLocks(tx, windowLockKeys(req.RoomID, req.ProfessionalID, day)); err != nil {
		u.log.Warnf("Failed to acquire window locks: %+v", err)
		return nil, err
	}

	if err := u.checkWindowConflicts(tx, req.ProfessionalID, req.RoomID, day, span, nil); err != nil {
		return nil, err
	}

	window := &entity.AvailabilityWindow{
		ProfessionalID: req.ProfessionalID,
		RoomID:         req.RoomID,
		DayOfWeek:      day,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}

	if err := u.windowRepo.Create(tx, window); err != nil {
		if isExclusionError(err, "windows_") {
			return nil, &WindowConflictError{}
		}
		u.log.Warnf("Failed to create window: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actor.ID, entity.AuditActionWindowCreate, "availability_window", window.ID.String(), window); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isExclusionError(err, "windows_") || isSerializationError(err) {
			return nil, &WindowConflictError{}
		}
		u.log.Warnf("Failed to commit window create: %+v", err)
		return nil, err
	}

	return converter.WindowToResponse(window), nil
}

func (u *availabilityUsecase) GetWindow(ctx context.Context, windowID uuid.UUID) (*dto.WindowResponse, error) {
	window, err := u.windowRepo.FindByID(u.db.WithContext(ctx), windowID)
	if err != nil {
		u.log.Warnf("Failed to find window: %+v", err)
		return nil, err
	}
	if window == nil {
		return nil, ErrWindowNotFound
	}
	return converter.WindowToResponse(window), nil
}

func (u *availabilityUsecase) ListWindows(ctx context.Context, query *dto.WindowQuery) (*dto.WindowListResponse, error) {
	filter := &entity.WindowFilter{ActiveOnly: true}
	if query != nil {
		filter.ProfessionalID = query.ProfessionalID
		filter.RoomID = query.RoomID
		filter.ActiveOnly = query.ActiveOnly
		if query.DayOfWeek != "" {
			day, err := entity.ParseWeekday(query.DayOfWeek)
			if err != nil {
				return nil, err
			}
			filter.DayOfWeek = &day
		}
	}

	windows, err := u.windowRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list windows: %+v", err)
		return nil, err
	}

	return &dto.WindowListResponse{
		Windows: converter.WindowsToResponses(windows),
		Total:   len(windows),
	}, nil
}

// UpdateWindow merges the partial update and re-validates everything against
// the post-merge values, even when only one side of the key changes.
func (u *availabilityUsecase) UpdateWindow(ctx context.Context, windowID uuid.UUID, req *dto.UpdateWindowRequest, actor entity.Actor) (*dto.WindowResponse, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	window, err := u.windowRepo.FindByID(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to find window: %+v", err)
		return nil, err
	}
	if window == nil {
		return nil, ErrWindowNotFound
	}
	old := *window

	if req.ProfessionalID != uuid.Nil {
		window.ProfessionalID = req.ProfessionalID
	}
	if req.RoomID != uuid.Nil {
		window.RoomID = req.RoomID
	}
	if req.DayOfWeek != "" {
		day, err := entity.ParseWeekday(req.DayOfWeek)
		if err != nil {
			return nil, err
		}
		window.DayOfWeek = day
	}
	if req.StartTime != "" {
		window.StartTime = req.StartTime
	}
	if req.EndTime != "" {
		window.EndTime = req.EndTime
	}

	span, err := interval.NewSpan(window.StartTime, window.EndTime)
	if err != nil {
		if errors.Is(err, interval.ErrEmptySpan) {
			return nil, ErrInvalidInterval
		}
		return nil, err
	}

	if _, err := resolveProfessional(tx, u.userRepo, window.ProfessionalID); err != nil {
		return nil, err
	}
	if _, err := resolveRoom(tx, u.roomRepo, window.RoomID); err != nil {
		return nil, err
	}

	if err := acquireAdvisoryLocks(tx, windowLockKeys(window.RoomID, window.ProfessionalID, window.DayOfWeek)); err != nil {
		u.log.Warnf("Failed to acquire window locks: %+v", err)
		return nil, err
	}

	if err := u.checkWindowConflicts(tx, window.ProfessionalID, window.RoomID, window.DayOfWeek, span, &window.ID); err != nil {
		return nil, err
	}

	if err := u.windowRepo.Update(tx, window); err != nil {
		if isExclusionError(err, "windows_") {
			return nil, &WindowConflictError{}
		}
		u.log.Warnf("Failed to update window: %+v", err)
		return nil, err
	}

	if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionWindowUpdate, "availability_window", window.ID.String(), old, window); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isExclusionError(err, "windows_") || isSerializationError(err) {
			return nil, &WindowConflictError{}
		}
		u.log.Warnf("Failed to commit window update: %+v", err)
		return nil, err
	}

	return converter.WindowToResponse(window), nil
}

// DeactivateWindow soft-deletes a window, keeping historical bookings that
// reference it valid. Preferred over DeleteWindow.
func (u *availabilityUsecase) DeactivateWindow(ctx context.Context, windowID uuid.UUID, actor entity.Actor) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	window, err := u.windowRepo.FindByID(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to find window: %+v", err)
		return err
	}
	if window == nil {
		return ErrWindowNotFound
	}

	inactive := false
	window.IsActive = &inactive
	if err := u.windowRepo.Update(tx, window); err != nil {
		u.log.Warnf("Failed to deactivate window: %+v", err)
		return err
	}

	if err := u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionWindowDeactivate, "availability_window", window.ID.String(), window); err != nil {
		return err
	}

	return tx.Commit().Error
}

// DeleteWindow removes the row for administrative cleanup. Bookings that
// referenced it keep their window_id nulled by the FK.
func (u *availabilityUsecase) DeleteWindow(ctx context.Context, windowID uuid.UUID, actor entity.Actor) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	window, err := u.windowRepo.FindByID(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to find window: %+v", err)
		return err
	}
	if window == nil {
		return ErrWindowNotFound
	}

	affected, err := u.windowRepo.Delete(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to delete window: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrWindowNotFound
	}

	if err := u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionWindowDelete, "availability_window", window.ID.String(), window); err != nil {
		return err
	}

	return tx.Commit().Error
}

// checkWindowConflicts scans active windows sharing the professional or the
// room on the weekday and rejects on the first overlap found.
func (u *availabilityUsecase) checkWindowConflicts(tx *gorm.DB, professionalID, roomID uuid.UUID, day time.Weekday, span interval.Span, excludeID *uuid.UUID) error {
	candidates, err := u.windowRepo.FindConflictCandidates(tx, professionalID, roomID, day, excludeID)
	if err != nil {
		u.log.Warnf("Failed to scan window conflicts: %+v", err)
		return err
	}

	spans := make([]interval.Span, 0, len(candidates))
	for _, c := range candidates {
		s, err := interval.NewSpan(c.StartTime, c.EndTime)
		if err != nil {
			return err
		}
		spans = append(spans, s)
	}

	if idx, ok := interval.FirstConflict(span, spans); ok {
		return &WindowConflictError{ConflictingID: candidates[idx].ID}
	}
	return nil
}
