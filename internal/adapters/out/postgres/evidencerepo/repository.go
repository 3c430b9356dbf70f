package evidencerepo

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.EvidenceRepository = (*GormEvidenceRepository)(nil)

// GormEvidenceRepository implements ADL media persistence using GORM.
type GormEvidenceRepository struct {
	db *gorm.DB
}

// NewGormEvidenceRepository creates a repository bound to the given database handle.
func NewGormEvidenceRepository(db *gorm.DB) *GormEvidenceRepository {
	return &GormEvidenceRepository{db: db}
}

// Add persists a new ADL media record.
func (r *GormEvidenceRepository) Add(ctx context.Context, record *order.Evidence) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(record)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllForOrder retrieves every ADL media record attached to the given order,
// oldest capture first.
func (r *GormEvidenceRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.Evidence, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EvidenceDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("captured_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*order.Evidence, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}

		records = append(records, record)
	}

	return records, nil
}
