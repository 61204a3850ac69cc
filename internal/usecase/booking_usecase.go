package usecase

import (
	"context"
	"database/sql"
	"errors"
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
	ErrBookingNotFound     = errors.New("booking not found")
	ErrSlotTaken           = errors.New("slot overlaps an existing booking")
	ErrOutsideAvailability = errors.New("requested slot falls outside the availability window")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidStatus       = errors.New("unknown booking status")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrForbidden           = errors.New("operation not allowed for this actor")
)

type BookingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest, actor entity.Actor) (*dto.BookingResponse, error)
	Get(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error)
	List(ctx context.Context, query *dto.BookingQuery, actor entity.Actor) (*dto.BookingListResponse, error)
	Update(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingRequest, actor entity.Actor) (*dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) error
}

type bookingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	windowRepo  repository.AvailabilityWindowRepository
	userRepo    repository.UserRepository
	roomRepo    repository.RoomRepository
	policy      *service.AccessPolicy
	audit       service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	windowRepo repository.AvailabilityWindowRepository,
	userRepo repository.UserRepository,
	roomRepo repository.RoomRepository,
	policy *service.AccessPolicy,
	audit service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:          db,
		log:         log,
		bookingRepo: bookingRepo,
		windowRepo:  windowRepo,
		userRepo:    userRepo,
		roomRepo:    roomRepo,
		policy:      policy,
		audit:       audit,
	}
}

func parseBookingDate(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// Create books a slot. Professionals cannot book on behalf of patients, and
// a patient can only book for themselves. The overlap scan and the insert
// run in one serializable transaction holding advisory locks on the room and
// the professional for the date, so two concurrent requests for overlapping
// slots cannot both pass the scan.
func (u *bookingUsecase) Create(ctx context.Context, req *dto.CreateBookingRequest, actor entity.Actor) (*dto.BookingResponse, error) {
	if !actor.Is(entity.RoleAdministrative) {
		if !actor.Is(entity.RolePatient) || actor.ID != req.PatientID {
			return nil, ErrForbidden
		}
	}

	date, err := parseBookingDate(req.Date)
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

	status := entity.BookingStatusScheduled
	if req.Status != "" {
		status = entity.BookingStatus(req.Status)
		if !entity.ValidBookingStatus(status) {
			return nil, ErrInvalidStatus
		}
	}

	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	if _, err := resolvePatient(tx, u.userRepo, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := resolveProfessional(tx, u.userRepo, req.ProfessionalID); err != nil {
		return nil, err
	}
	if _, err := resolveRoom(tx, u.roomRepo, req.RoomID); err != nil {
		return nil, err
	}

	if req.WindowID != nil {
		if err := u.checkWindowContainment(tx, *req.WindowID, req.ProfessionalID, req.RoomID, date, span); err != nil {
			return nil, err
		}
	}

	if err := acquireAdvisoryLocks(tx, slotLockKeys(req.RoomID, req.ProfessionalID, date)); err != nil {
		u.log.Warnf("Failed to acquire slot locks: %+v", err)
		return nil, err
	}

	if err := u.checkSlotConflicts(tx, req.RoomID, req.ProfessionalID, date, span, nil); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		RoomID:         req.RoomID,
		WindowID:       req.WindowID,
		Date:           date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Status:         status,
		Notes:          req.Notes,
	}

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		if isExclusionError(err, "bookings_") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actor.ID, entity.AuditActionBookingCreate, "booking", booking.ID.String(), booking); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isExclusionError(err, "bookings_") || isSerializationError(err) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to commit booking create: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Get(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil || !booking.Active() {
		return nil, ErrBookingNotFound
	}
	if !u.policy.CanAccessBooking(actor, booking, service.OpRead) {
		return nil, ErrForbidden
	}
	return converter.BookingToResponse(booking), nil
}

// List narrows results to the actor's scope before applying query filters. A
// patient only ever sees their own bookings no matter what filters they send.
func (u *bookingUsecase) List(ctx context.Context, query *dto.BookingQuery, actor entity.Actor) (*dto.BookingListResponse, error) {
	scope := u.policy.ListScopeFor(actor)
	if scope.Empty {
		return &dto.BookingListResponse{Bookings: []dto.BookingResponse{}, Total: 0}, nil
	}

	filter := &entity.BookingFilter{}
	if query != nil {
		filter.PatientID = query.PatientID
		filter.ProfessionalID = query.ProfessionalID
		filter.RoomID = query.RoomID
		filter.Limit = query.Limit
		filter.Offset = query.Offset
		if query.Date != "" {
			date, err := parseBookingDate(query.Date)
			if err != nil {
				return nil, err
			}
			filter.Date = &date
		}
	}
	if scope.PatientID != nil {
		filter.PatientID = scope.PatientID
	}
	if scope.ProfessionalID != nil {
		filter.ProfessionalID = scope.ProfessionalID
	}

	bookings, total, err := u.bookingRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    total,
	}, nil
}

// Update merges the partial request and re-runs the full slot validation
// when the date or either time changes. Status changes go through the
// transition state machine.
func (u *bookingUsecase) Update(ctx context.Context, bookingID uuid.UUID, req *dto.UpdateBookingRequest, actor entity.Actor) (*dto.BookingResponse, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if booking == nil || !booking.Active() {
		return nil, ErrBookingNotFound
	}
	if !u.policy.CanAccessBooking(actor, booking, service.OpWrite) {
		return nil, ErrForbidden
	}
	old := *booking

	timesChanged := false
	if req.Date != "" {
		date, err := parseBookingDate(req.Date)
		if err != nil {
			return nil, err
		}
		booking.Date = date
		timesChanged = true
	}
	if req.StartTime != "" {
		booking.StartTime = req.StartTime
		timesChanged = true
	}
	if req.EndTime != "" {
		booking.EndTime = req.EndTime
		timesChanged = true
	}
	if req.Notes != "" {
		booking.Notes = req.Notes
	}
	if req.Status != "" {
		next := entity.BookingStatus(req.Status)
		if !entity.ValidBookingStatus(next) {
			return nil, ErrInvalidStatus
		}
		if next != booking.Status {
			if !booking.CanTransitionTo(next) {
				return nil, ErrInvalidTransition
			}
			booking.Status = next
		}
	}

	if timesChanged {
		span, err := interval.NewSpan(booking.StartTime, booking.EndTime)
		if err != nil {
			if errors.Is(err, interval.ErrEmptySpan) {
				return nil, ErrInvalidInterval
			}
			return nil, err
		}

		if booking.WindowID != nil {
			if err := u.checkWindowContainment(tx, *booking.WindowID, booking.ProfessionalID, booking.RoomID, booking.Date, span); err != nil {
				return nil, err
			}
		}

		if err := acquireAdvisoryLocks(tx, slotLockKeys(booking.RoomID, booking.ProfessionalID, booking.Date)); err != nil {
			u.log.Warnf("Failed to acquire slot locks: %+v", err)
			return nil, err
		}

		if err := u.checkSlotConflicts(tx, booking.RoomID, booking.ProfessionalID, booking.Date, span, &booking.ID); err != nil {
			return nil, err
		}
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		if isExclusionError(err, "bookings_") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update booking: %+v", err)
		return nil, err
	}

	if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionBookingUpdate, "booking", booking.ID.String(), old, booking); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isExclusionError(err, "bookings_") || isSerializationError(err) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to commit booking update: %+v", err)
		return nil, err
	}

	return converter.BookingToResponse(booking), nil
}

// Cancel deactivates the booking and, when the state machine allows it,
// also moves the status to CANCELADA so both views of cancellation agree.
// Either way the slot is freed.
func (u *bookingUsecase) Cancel(ctx context.Context, bookingID uuid.UUID, actor entity.Actor) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	booking, err := u.bookingRepo.FindByID(tx, bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return err
	}
	if booking == nil || !booking.Active() {
		return ErrBookingNotFound
	}
	if !u.policy.CanAccessBooking(actor, booking, service.OpDelete) {
		return ErrForbidden
	}

	inactive := false
	booking.IsActive = &inactive
	if booking.CanTransitionTo(entity.BookingStatusCancelled) {
		booking.Status = entity.BookingStatusCancelled
	}

	if err := u.bookingRepo.Update(tx, booking); err != nil {
		u.log.Warnf("Failed to cancel booking: %+v", err)
		return err
	}

	if err := u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionBookingCancel, "booking", booking.ID.String(), booking); err != nil {
		return err
	}

	return tx.Commit().Error
}

// checkWindowContainment verifies the slot sits inside the given window:
// same professional, same room, matching weekday, and the interval fully
// contained in the window's span.
func (u *bookingUsecase) checkWindowContainment(tx *gorm.DB, windowID, professionalID, roomID uuid.UUID, date time.Time, span interval.Span) error {
	window, err := u.windowRepo.FindByID(tx, windowID)
	if err != nil {
		u.log.Warnf("Failed to find window: %+v", err)
		return err
	}
	if window == nil || !window.Active() {
		return ErrWindowNotFound
	}
	if window.ProfessionalID != professionalID || window.RoomID != roomID {
		return ErrOutsideAvailability
	}
	if window.DayOfWeek != date.Weekday() {
		return ErrOutsideAvailability
	}

	windowSpan, err := interval.NewSpan(window.StartTime, window.EndTime)
	if err != nil {
		return err
	}
	if !interval.Contains(windowSpan, span) {
		return ErrOutsideAvailability
	}
	return nil
}

// checkSlotConflicts scans active bookings sharing the room or the
// professional on the date and rejects on the first overlap.
func (u *bookingUsecase) checkSlotConflicts(tx *gorm.DB, roomID, professionalID uuid.UUID, date time.Time, span interval.Span, excludeID *uuid.UUID) error {
	candidates, err := u.bookingRepo.FindOverlapCandidates(tx, roomID, professionalID, date, excludeID)
	if err != nil {
		u.log.Warnf("Failed to scan booking overlaps: %+v", err)
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

	if _, ok := interval.FirstConflict(span, spans); ok {
		return ErrSlotTaken
	}
	return nil
}
