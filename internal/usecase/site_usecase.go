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

var ErrSiteNotFound = errors.New("site not found")

type SiteUsecase interface {
	Create(ctx context.Context, req *dto.CreateSiteRequest, actor entity.Actor) (*dto.SiteResponse, error)
	Get(ctx context.Context, siteID uuid.UUID) (*dto.SiteResponse, error)
	List(ctx context.Context, activeOnly bool) (*dto.SiteListResponse, error)
	Update(ctx context.Context, siteID uuid.UUID, req *dto.UpdateSiteRequest, actor entity.Actor) (*dto.SiteResponse, error)
}

type siteUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	siteRepo repository.SiteRepository
	audit    service.AuditService
}

func NewSiteUsecase(db *gorm.DB, log *logrus.Logger, siteRepo repository.SiteRepository, audit service.AuditService) SiteUsecase {
	return &siteUsecase{
		db:       db,
		log:      log,
		siteRepo: siteRepo,
		audit:    audit,
	}
}

func (u *siteUsecase) Create(ctx context.Context, req *dto.CreateSiteRequest, actor entity.Actor) (*dto.SiteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	site := &entity.Site{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
	}

	if err := u.siteRepo.Create(tx, site); err != nil {
		u.log.Warnf("Failed to create site: %+v", err)
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, tx, &actor.ID, entity.AuditActionSiteCreate, "site", site.ID.String(), site); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit site create: %+v", err)
		return nil, err
	}

	return converter.SiteToResponse(site), nil
}

func (u *siteUsecase) Get(ctx context.Context, siteID uuid.UUID) (*dto.SiteResponse, error) {
	site, err := u.siteRepo.FindByID(u.db.WithContext(ctx), siteID)
	if err != nil {
		u.log.Warnf("Failed to find site: %+v", err)
		return nil, err
	}
	if site == nil {
		return nil, ErrSiteNotFound
	}
	return converter.SiteToResponse(site), nil
}

func (u *siteUsecase) List(ctx context.Context, activeOnly bool) (*dto.SiteListResponse, error) {
	sites, err := u.siteRepo.FindAll(u.db.WithContext(ctx), activeOnly)
	if err != nil {
		u.log.Warnf("Failed to list sites: %+v", err)
		return nil, err
	}
	return &dto.SiteListResponse{
		Sites: converter.SitesToResponses(sites),
		Total: len(sites),
	}, nil
}

func (u *siteUsecase) Update(ctx context.Context, siteID uuid.UUID, req *dto.UpdateSiteRequest, actor entity.Actor) (*dto.SiteResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	site, err := u.siteRepo.FindByID(tx, siteID)
	if err != nil {
		u.log.Warnf("Failed to find site: %+v", err)
		return nil, err
	}
	if site == nil {
		return nil, ErrSiteNotFound
	}
	old := *site

	if req.Name != "" {
		site.Name = req.Name
	}
	if req.Address != "" {
		site.Address = req.Address
	}
	if req.City != "" {
		site.City = req.City
	}
	if req.IsActive != nil {
		site.IsActive = req.IsActive
	}

	if err := u.siteRepo.Update(tx, site); err != nil {
		u.log.Warnf("Failed to update site: %+v", err)
		return nil, err
	}

	if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionSiteUpdate, "site", site.ID.String(), old, site); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit site update: %+v", err)
		return nil, err
	}

	return converter.SiteToResponse(site), nil
}
