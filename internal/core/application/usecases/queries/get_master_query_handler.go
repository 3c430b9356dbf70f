package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMasterQueryHandler retrieves a single master with their current load.
type GetMasterQueryHandler struct {
	db *gorm.DB
}

// NewGetMasterQueryHandler creates a handler for single-master queries.
func NewGetMasterQueryHandler(db *gorm.DB) GetMasterQueryHandler {
	return GetMasterQueryHandler{db: db}
}

// Handle executes the query for the requested master.
// Returns an object-not-found error when the master does not exist.
func (h GetMasterQueryHandler) Handle(
	ctx context.Context,
	query GetMasterQuery,
) (MasterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return MasterQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.id,
			m.name,
			m.rating,
			m.available,
			m.location_lat,
			m.location_lng,
			(
				SELECT COUNT(*)
				FROM orders o
				WHERE o.master_id = m.id AND o.status IN ('assigned', 'in_progress')
			) AS current_load
		FROM masters m
		WHERE m.id = ?
	`, query.MasterID().Bytes()).Rows()
	if err != nil {
		return MasterQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return MasterQueryResponse{}, err
		}
		return MasterQueryResponse{}, errs.NewObjectNotFoundError(
			"masterId", query.MasterID().String(),
		)
	}

	var (
		master   MasterQueryResponse
		id       uuid.UUID
		lat, lng float64
	)

	if err = rows.Scan(
		&id,
		&master.Name,
		&master.Rating,
		&master.Available,
		&lat,
		&lng,
		&master.CurrentLoad,
	); err != nil {
		return MasterQueryResponse{}, err
	}

	if master.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return MasterQueryResponse{}, err
	}
	master.Location = kernel.NewGeoPoint(lat, lng)

	return master, rows.Err()
}
