// Package masterrepo persists master aggregates and answers workload queries
// used by the assignment workflow.
package masterrepo

import (
	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"

	"github.com/google/uuid"
)

// MasterDTO represents the database structure for persisting master records.
type MasterDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name      string      `gorm:"not null"`
	Rating    float64     `gorm:"type:double precision;not null"`
	Available bool        `gorm:"not null;index"`
	Location  GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`
}

// TableName specifies the database table name for master entities.
func (MasterDTO) TableName() string {
	return "masters"
}

// GeoPointDTO represents embedded geographic coordinates in decimal degrees.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

func fromDomain(aggregate *master.Master) MasterDTO {
	return MasterDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Rating:    aggregate.Rating(),
		Available: aggregate.IsAvailable(),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
	}
}

func toDomain(dto MasterDTO) (*master.Master, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return master.NewMaster(
		id,
		dto.Name,
		dto.Rating,
		dto.Available,
		kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng),
	)
}
