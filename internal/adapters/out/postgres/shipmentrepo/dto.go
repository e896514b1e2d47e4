// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
package shipmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. CourierTypeCode holds the transport type frozen at
// assignment; CompleteTime stays null while the shipment is active.
type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID       uint64     `gorm:"not null;index"`
	CourierTypeCode string     `gorm:"type:varchar(32);not null"`
	AssignTime      time.Time  `gorm:"not null"`
	CompleteTime    *time.Time `gorm:""`
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:              aggregate.ID(),
		CourierID:       aggregate.CourierID(),
		CourierTypeCode: aggregate.CourierTypeCode(),
		AssignTime:      aggregate.AssignTime(),
		CompleteTime:    aggregate.CompleteTime(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	return shipment.RestoreShipment(
		dto.ID,
		dto.CourierID,
		dto.CourierTypeCode,
		dto.AssignTime,
		dto.CompleteTime,
	)
}
