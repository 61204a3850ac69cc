package usecase

import (
	"context"

	"clinic-scheduling-api/internal/converter"
	"clinic-scheduling-api/internal/delivery/dto"
	"clinic-scheduling-api/internal/domain/entity"
	"clinic-scheduling-api/internal/domain/repository"
	"clinic-scheduling-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RoomUsecase interface {
	Create(ctx context.Context, req *dto.CreateRoomRequest, actor entity.Actor) (*dto.RoomResponse, error)
	Get(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, error)
	List(ctx context.Context, siteID *uuid.UUID, availableOnly bool) (*dto.RoomListResponse, error)
	Update(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomRequest, actor entity.Actor) (*dto.RoomResponse, error)
}

type roomUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	roomRepo repository.RoomRepository
	siteRepo repository.SiteRepository
	audit    service.AuditService
}

func NewRoomUsecase(db *gorm.DB, log *logrus.Logger, roomRepo repository.RoomRepository, siteRepo repository.SiteRepository, audit service.AuditService) RoomUsecase {
	return &roomUsecase{
		db:       db,
		log:      log,
		roomRepo: roomRepo,
		siteRepo: siteRepo,
		audit:    audit,
	}
}

func (u *roomUsecase) Create(ctx context.Context, req *dto.CreateRoomRequest, actor entity.Actor) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	site, err := u.siteRepo.FindByID(tx, req.SiteID)
	if err != nil {
		u.log.Warnf("Failed to find site: %+v", err)
		return nil, err
	}
	if site == nil || !site.Active() {
		return nil, ErrSiteNotFound
	}

	room := &entity.Room{
		Name:   req.Name,
		SiteID: req.SiteID,
	}

	if err := u.roomRepo.Create(tx, room); err != nil {
		u.log.Warnf("Failed to create room: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actor.ID, entity.AuditActionRoomCreate, "room", room.ID.String(), room); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit room create: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) Get(ctx context.Context, roomID uuid.UUID) (*dto.RoomResponse, error) {
	room, err := u.roomRepo.FindByID(u.db.WithContext(ctx), roomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return converter.RoomToResponse(room), nil
}

func (u *roomUsecase) List(ctx context.Context, siteID *uuid.UUID, availableOnly bool) (*dto.RoomListResponse, error) {
	rooms, err := u.roomRepo.FindAll(u.db.WithContext(ctx), siteID, availableOnly)
	if err != nil {
		u.log.Warnf("Failed to list rooms: %+v", err)
		return nil, err
	}
	return &dto.RoomListResponse{
		Rooms: converter.RoomsToResponses(rooms),
		Total: len(rooms),
	}, nil
}

func (u *roomUsecase) Update(ctx context.Context, roomID uuid.UUID, req *dto.UpdateRoomRequest, actor entity.Actor) (*dto.RoomResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	room, err := u.roomRepo.FindByID(tx, roomID)
	if err != nil {
		u.log.Warnf("Failed to find room: %+v", err)
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	old := *room

	if req.Name != "" {
		room.Name = req.Name
	}
	if req.IsAvailable != nil {
		room.IsAvailable = req.IsAvailable
	}

	if err := u.roomRepo.Update(tx, room); err != nil {
		u.log.Warnf("Failed to update room: %+v", err)
		return nil, err
	}

	if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionRoomUpdate, "room", room.ID.String(), old, room); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit room update: %+v", err)
		return nil, err
	}

	return converter.RoomToResponse(room), nil
}
