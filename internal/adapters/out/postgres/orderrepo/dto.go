// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by status and master assignment. Customer contact
// details are stored as a JSONB document.
type OrderDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title       string         `gorm:"not null"`
	Description *string        `gorm:"type:text"`
	Customer    datatypes.JSON `gorm:"type:jsonb"`
	Location    GeoPointDTO    `gorm:"embedded;embeddedPrefix:location_"`
	Status      string         `gorm:"type:varchar(20);not null;index"`
	MasterID    *uuid.UUID     `gorm:"type:uuid;index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded geographic coordinates in decimal degrees.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional master assignment.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	var masterID *uuid.UUID
	if id := aggregate.Master(); id != nil {
		raw := id.Bytes()
		masterID = &raw
	}

	var customer datatypes.JSON
	if c := aggregate.Customer(); c != nil {
		raw, err := json.Marshal(c)
		if err != nil {
			return OrderDTO{}, err
		}
		customer = datatypes.JSON(raw)
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Title:       aggregate.Title(),
		Description: aggregate.Description(),
		Customer:    customer,
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		Status:    aggregate.Status().String(),
		MasterID:  masterID,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and master assignment
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var masterID *kernel.UUID
	if dto.MasterID != nil {
		mID, masterErr := kernel.UUIDFromBytes((*dto.MasterID)[:])
		if masterErr != nil {
			return nil, masterErr
		}

		masterID = &mID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var customer *order.Customer
	if len(dto.Customer) > 0 {
		customer = &order.Customer{}
		if err = json.Unmarshal(dto.Customer, customer); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		id,
		dto.Title,
		dto.Description,
		customer,
		kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng),
		status,
		masterID,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
