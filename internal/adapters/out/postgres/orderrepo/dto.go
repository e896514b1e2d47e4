// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The shipment reference and completion time stay null until assignment and
// delivery respectively.
type OrderDTO struct {
	ID           uint64             `gorm:"primaryKey;autoIncrement:false"`
	Weight       decimal.Decimal    `gorm:"type:decimal(12,3);not null"`
	RegionID     uint64             `gorm:"not null;index"`
	ShipmentID   *uuid.UUID         `gorm:"type:uuid;index"`
	CompleteTime *time.Time         `gorm:""`
	Intervals    []OrderIntervalDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderIntervalDTO represents one acceptable delivery window of an order,
// stored as "HH:MM" boundary strings.
type OrderIntervalDTO struct {
	ID        uint64 `gorm:"primaryKey"`
	OrderID   uint64 `gorm:"not null;index"`
	StartTime string `gorm:"type:varchar(5);not null"`
	EndTime   string `gorm:"type:varchar(5);not null"`
}

// TableName specifies the database table name for order delivery windows.
func (OrderIntervalDTO) TableName() string {
	return "order_intervals"
}

// RegionDTO represents a delivery region, created lazily on first reference.
type RegionDTO struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for regions.
func (RegionDTO) TableName() string {
	return "regions"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	intervals := make([]OrderIntervalDTO, 0, len(aggregate.DeliveryIntervals()))
	for _, interval := range aggregate.DeliveryIntervals() {
		intervals = append(intervals, OrderIntervalDTO{
			OrderID:   aggregate.ID(),
			StartTime: interval.Start().String(),
			EndTime:   interval.End().String(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID(),
		Weight:       aggregate.Weight().Value(),
		RegionID:     aggregate.RegionID(),
		ShipmentID:   aggregate.ShipmentID(),
		CompleteTime: aggregate.CompleteTime(),
		Intervals:    intervals,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Requires the Intervals association to be loaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}

	intervals := make([]kernel.TimeInterval, 0, len(dto.Intervals))
	for _, intervalDTO := range dto.Intervals {
		interval, intervalErr := kernel.ParseTimeInterval(
			fmt.Sprintf("%s-%s", intervalDTO.StartTime, intervalDTO.EndTime))
		if intervalErr != nil {
			return nil, intervalErr
		}
		intervals = append(intervals, interval)
	}

	return order.RestoreOrder(dto.ID, weight, dto.RegionID, intervals, dto.ShipmentID, dto.CompleteTime)
}
