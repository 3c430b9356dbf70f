package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"
	"fieldservice/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order with its master and evidence
// relations. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query for the requested order.
// Returns an object-not-found error when the order does not exist. The
// assigned master and evidence records are populated whenever present.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.MasterID != nil {
		master, masterErr := h.fetchMaster(ctx, *response.MasterID)
		if masterErr != nil {
			return GetOrderQueryResponse{}, masterErr
		}
		response.Master = master
	}

	evidence, err := h.fetchEvidence(ctx, response.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Evidence = evidence

	return response, nil
}

func (h GetOrderQueryHandler) fetchOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			description,
			customer,
			location_lat,
			location_lng,
			status,
			master_id,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", orderID.String())
	}

	var (
		response     GetOrderQueryResponse
		id           uuid.UUID
		description  sql.NullString
		customerJSON []byte
		lat, lng     float64
		masterID     uuid.NullUUID
	)

	if err = rows.Scan(
		&id,
		&response.Title,
		&description,
		&customerJSON,
		&lat,
		&lng,
		&response.Status,
		&masterID,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Location = kernel.NewGeoPoint(lat, lng)

	if description.Valid {
		response.Description = &description.String
	}

	if len(customerJSON) > 0 {
		var customer order.Customer
		if err = json.Unmarshal(customerJSON, &customer); err != nil {
			return GetOrderQueryResponse{}, err
		}
		response.Customer = &customer
	}

	if masterID.Valid {
		assignedID, idErr := kernel.UUIDFromBytes(masterID.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		response.MasterID = &assignedID
	}

	return response, rows.Err()
}

func (h GetOrderQueryHandler) fetchMaster(
	ctx context.Context,
	masterID kernel.UUID,
) (*OrderMasterResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			rating,
			available,
			location_lat,
			location_lng
		FROM masters
		WHERE id = ?
	`, masterID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("masterId", masterID.String())
	}

	var (
		master   OrderMasterResponse
		id       uuid.UUID
		lat, lng float64
	)

	if err = rows.Scan(&id, &master.Name, &master.Rating, &master.Available, &lat, &lng); err != nil {
		return nil, err
	}

	if master.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	master.Location = kernel.NewGeoPoint(lat, lng)

	return &master, rows.Err()
}

func (h GetOrderQueryHandler) fetchEvidence(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderEvidenceResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			media_type,
			url,
			gps_lat,
			gps_lng,
			captured_at,
			meta
		FROM adl_media
		WHERE order_id = ?
		ORDER BY captured_at
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	evidence := make([]OrderEvidenceResponse, 0)

	for rows.Next() {
		var (
			record     OrderEvidenceResponse
			id         uuid.UUID
			recOrderID uuid.UUID
			lat, lng   sql.NullFloat64
			capturedAt sql.NullTime
			metaJSON   []byte
		)

		if err = rows.Scan(
			&id, &recOrderID, &record.MediaType, &record.URL, &lat, &lng, &capturedAt, &metaJSON,
		); err != nil {
			return nil, err
		}

		if record.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if record.OrderID, err = kernel.UUIDFromBytes(recOrderID[:]); err != nil {
			return nil, err
		}

		if lat.Valid && lng.Valid {
			location := kernel.NewGeoPoint(lat.Float64, lng.Float64)
			record.Location = &location
		}
		if capturedAt.Valid {
			captured := capturedAt.Time.UTC()
			record.CapturedAt = &captured
		}
		if len(metaJSON) > 0 {
			var meta map[string]any
			if err = json.Unmarshal(metaJSON, &meta); err != nil {
				return nil, err
			}
			record.Meta = meta
		}

		evidence = append(evidence, record)
	}

	return evidence, rows.Err()
}
