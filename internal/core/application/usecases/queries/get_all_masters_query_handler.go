package queries

import (
	"context"

	"fieldservice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllMastersQueryHandler retrieves all masters with their current load.
// Uses direct SQL queries for optimal read performance in the CQRS pattern;
// the load is computed in a single query via a correlated subquery instead
// of one count query per master.
type GetAllMastersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllMastersQueryHandler creates a handler for master list queries.
// Requires a GORM database connection for query execution.
func NewGetAllMastersQueryHandler(db *gorm.DB) GetAllMastersQueryHandler {
	return GetAllMastersQueryHandler{db: db}
}

// Handle executes the query to retrieve all masters sorted by name.
func (h GetAllMastersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMastersQuery,
) ([]MasterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	masters := make([]MasterQueryResponse, 0)

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
		ORDER BY m.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
			return nil, err
		}

		masterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		master.ID = masterID
		master.Location = kernel.NewGeoPoint(lat, lng)

		masters = append(masters, master)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return masters, nil
}
