package masterrepo

import (
	"context"
	"errors"

	"fieldservice/internal/adapters/out/postgres/orderrepo"
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/ports"
	"fieldservice/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.MasterRepository = (*GormMasterRepository)(nil)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormMasterRepository implements master persistence using GORM.
type GormMasterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMasterRepository creates a repository bound to the given database handle.
// The tracker may be nil when change tracking is not required.
func NewGormMasterRepository(db *gorm.DB, tracker aggregateTracker) *GormMasterRepository {
	return &GormMasterRepository{db: db, tracker: tracker}
}

// Add persists a new master aggregate to the database.
func (r *GormMasterRepository) Add(ctx context.Context, aggregate *master.Master) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves changes to an existing master aggregate.
func (r *GormMasterRepository) Update(ctx context.Context, aggregate *master.Master) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MasterDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("masterId", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

// Get retrieves a master aggregate by its identifier.
func (r *GormMasterRepository) Get(ctx context.Context, id kernel.UUID) (*master.Master, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MasterDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("masterId", id.String())
		}

		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every master regardless of availability.
func (r *GormMasterRepository) GetAll(ctx context.Context) ([]*master.Master, error) {
	var dtos []MasterDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllAvailable retrieves the masters currently accepting new orders.
func (r *GormMasterRepository) GetAllAvailable(ctx context.Context) ([]*master.Master, error) {
	var dtos []MasterDTO
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// CountActiveOrders returns the number of assigned or in-progress orders
// currently referencing the given master.
func (r *GormMasterRepository) CountActiveOrders(ctx context.Context, id kernel.UUID) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&orderrepo.OrderDTO{}).
		Where("master_id = ? AND status IN ?", id.Bytes(), []string{
			order.Assigned.String(),
			order.InProgress.String(),
		}).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func toDomainSlice(dtos []MasterDTO) ([]*master.Master, error) {
	aggregates := make([]*master.Master, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func (r *GormMasterRepository) track(aggregate *master.Master) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
