package usecase

import (
	"context"
	"errors"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound      = errors.New("clinical record not found")
	ErrBookingNotConfirmed = errors.New("booking must be confirmed before a record can be attached")
	ErrRecordMismatch      = errors.New("record participants do not match the booking")
)

type ClinicalRecordUsecase interface {
	Create(ctx context.Context, req *dto.CreateRecordRequest, actor entity.Actor) (*dto.RecordResponse, error)
	Get(ctx context.Context, recordID uuid.UUID, actor entity.Actor) (*dto.RecordResponse, error)
	List(ctx context.Context, query *dto.RecordQuery, actor entity.Actor) (*dto.RecordListResponse, error)
	Update(ctx context.Context, recordID uuid.UUID, req *dto.UpdateRecordRequest, actor entity.Actor) (*dto.RecordResponse, error)
	Remove(ctx context.Context, recordID uuid.UUID, actor entity.Actor) error
}

type clinicalRecordUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	recordRepo  repository.ClinicalRecordRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	policy      *service.AccessPolicy
	audit       service.AuditService
}

func NewClinicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.ClinicalRecordRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	policy *service.AccessPolicy,
	audit service.AuditService,
) ClinicalRecordUsecase {
	return &clinicalRecordUsecase{
		db:          db,
		log:         log,
		recordRepo:  recordRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		policy:      policy,
		audit:       audit,
	}
}

// checkRecordBooking gates record creation on the booking: it must exist and
// be active, be in the confirmed state, and carry exactly the patient and
// professional the record names.
func checkRecordBooking(booking *entity.Booking, patientID, professionalID uuid.UUID) error {
	if booking == nil || !booking.Active() {
		return ErrBookingNotFound
	}
	if !booking.IsConfirmed() {
		return ErrBookingNotConfirmed
	}
	if booking.PatientID != patientID || booking.ProfessionalID != professionalID {
		return ErrRecordMismatch
	}
	return nil
}

// Create attaches a record to a booking. The booking must be confirmed, and
// the record's patient and professional must be exactly the booking's.
// Professionals may only write records for their own bookings.
func (u *clinicalRecordUsecase) Create(ctx context.Context, req *dto.CreateRecordRequest, actor entity.Actor) (*dto.RecordResponse, error) {
	if !actor.Is(entity.RoleAdministrative) {
		if !actor.Is(entity.RoleProfessional) || actor.ID != req.ProfessionalID {
			return nil, ErrForbidden
		}
	}

	tx := u.db.WithContext(ctx).Begin()
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

	booking, err := u.bookingRepo.FindByID(tx, req.BookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking: %+v", err)
		return nil, err
	}
	if err := checkRecordBooking(booking, req.PatientID, req.ProfessionalID); err != nil {
		return nil, err
	}

	record := &entity.ClinicalRecord{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		BookingID:      req.BookingID,
		Diagnosis:      req.Diagnosis,
		Treatment:      req.Treatment,
		Notes:          req.Notes,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create clinical record: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actor.ID, entity.AuditActionRecordCreate, "clinical_record", record.ID.String(), record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit record create: %+v", err)
		return nil, err
	}

	return converter.RecordToResponse(record), nil
}

func (u *clinicalRecordUsecase) Get(ctx context.Context, recordID uuid.UUID, actor entity.Actor) (*dto.RecordResponse, error) {
	record, err := u.recordRepo.FindByID(u.db.WithContext(ctx), recordID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record: %+v", err)
		return nil, err
	}
	if record == nil || !record.Active() {
		return nil, ErrRecordNotFound
	}
	if !u.policy.CanAccessRecord(actor, record, service.OpRead) {
		return nil, ErrForbidden
	}
	return converter.RecordToResponse(record), nil
}

func (u *clinicalRecordUsecase) List(ctx context.Context, query *dto.RecordQuery, actor entity.Actor) (*dto.RecordListResponse, error) {
	scope := u.policy.ListScopeFor(actor)
	if scope.Empty {
		return &dto.RecordListResponse{Records: []dto.RecordResponse{}, Total: 0}, nil
	}

	filter := &entity.RecordFilter{}
	if query != nil {
		filter.PatientID = query.PatientID
		filter.ProfessionalID = query.ProfessionalID
		filter.BookingID = query.BookingID
		filter.Limit = query.Limit
		filter.Offset = query.Offset
	}
	if scope.PatientID != nil {
		filter.PatientID = scope.PatientID
	}
	if scope.ProfessionalID != nil {
		filter.ProfessionalID = scope.ProfessionalID
	}

	records, total, err := u.recordRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list clinical records: %+v", err)
		return nil, err
	}

	return &dto.RecordListResponse{
		Records: converter.RecordsToResponses(records),
		Total:   total,
	}, nil
}

// Update edits the clinical content only. Participants and the booking link
// are immutable once the record exists.
func (u *clinicalRecordUsecase) Update(ctx context.Context, recordID uuid.UUID, req *dto.UpdateRecordRequest, actor entity.Actor) (*dto.RecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record: %+v", err)
		return nil, err
	}
	if record == nil || !record.Active() {
		return nil, ErrRecordNotFound
	}
	if !u.policy.CanAccessRecord(actor, record, service.OpWrite) {
		return nil, ErrForbidden
	}
	old := *record

	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.Treatment != "" {
		record.Treatment = req.Treatment
	}
	if req.Notes != "" {
		record.Notes = req.Notes
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update clinical record: %+v", err)
		return nil, err
	}

	if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionRecordUpdate, "clinical_record", record.ID.String(), old, record); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit record update: %+v", err)
		return nil, err
	}

	return converter.RecordToResponse(record), nil
}

// Remove soft-deletes a record. Only administrators may do this.
func (u *clinicalRecordUsecase) Remove(ctx context.Context, recordID uuid.UUID, actor entity.Actor) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	record, err := u.recordRepo.FindByID(tx, recordID)
	if err != nil {
		u.log.Warnf("Failed to find clinical record: %+v", err)
		return err
	}
	if record == nil || !record.Active() {
		return ErrRecordNotFound
	}
	if !u.policy.CanAccessRecord(actor, record, service.OpDelete) {
		return ErrForbidden
	}

	inactive := false
	record.IsActive = &inactive
	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to delete clinical record: %+v", err)
		return err
	}

	if err := u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionRecordDelete, "clinical_record", record.ID.String(), record); err != nil {
		return err
	}

	return tx.Commit().Error
}
