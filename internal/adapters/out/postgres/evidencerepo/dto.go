// Package evidencerepo persists ADL media records attached to orders.
// Records are append-only; once stored they are never modified.
package evidencerepo

import (
	"encoding/json"
	"time"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EvidenceDTO represents the database structure for persisting ADL media.
// GPS coordinates and the capture timestamp are nullable; records missing
// either are stored but do not count toward order completion.
type EvidenceDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID      `gorm:"type:uuid;not null;index"`
	MediaType  string         `gorm:"type:varchar(10);not null"`
	URL        string         `gorm:"not null"`
	Gps        GpsDTO         `gorm:"embedded;embeddedPrefix:gps_"`
	CapturedAt *time.Time     `gorm:"type:timestamptz"`
	Meta       datatypes.JSON `gorm:"type:jsonb"`
}

// TableName specifies the database table name for ADL media records.
func (EvidenceDTO) TableName() string {
	return "adl_media"
}

// GpsDTO represents optional embedded capture coordinates.
type GpsDTO struct {
	Lat *float64 `gorm:"type:double precision"`
	Lng *float64 `gorm:"type:double precision"`
}

func fromDomain(record *order.Evidence) (EvidenceDTO, error) {
	dto := EvidenceDTO{
		ID:        record.ID().Bytes(),
		OrderID:   record.OrderID().Bytes(),
		MediaType: record.MediaType().String(),
		URL:       record.URL(),
	}

	if location := record.Location(); location.Validate() == nil {
		lat, lng := location.Lat(), location.Lng()
		dto.Gps = GpsDTO{Lat: &lat, Lng: &lng}
	}

	if capturedAt := record.CapturedAt(); !capturedAt.IsZero() {
		dto.CapturedAt = &capturedAt
	}

	if meta := record.Meta(); meta != nil {
		raw, err := json.Marshal(meta)
		if err != nil {
			return EvidenceDTO{}, err
		}
		dto.Meta = datatypes.JSON(raw)
	}

	return dto, nil
}

func toDomain(dto EvidenceDTO) (*order.Evidence, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var location kernel.GeoPoint
	if dto.Gps.Lat != nil && dto.Gps.Lng != nil {
		location = kernel.NewGeoPoint(*dto.Gps.Lat, *dto.Gps.Lng)
	}

	var capturedAt time.Time
	if dto.CapturedAt != nil {
		capturedAt = dto.CapturedAt.UTC()
	}

	var meta map[string]any
	if len(dto.Meta) > 0 {
		if err = json.Unmarshal(dto.Meta, &meta); err != nil {
			return nil, err
		}
	}

	return order.RestoreEvidence(
		id,
		orderID,
		order.MediaType(dto.MediaType),
		dto.URL,
		location,
		capturedAt,
		meta,
	)
}
