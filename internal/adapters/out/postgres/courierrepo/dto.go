// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"fmt"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Maps courier domain entities to relational database tables with proper foreign key relationships.
type CourierDTO struct {
	ID       uint64            `gorm:"primaryKey;autoIncrement:false"`
	TypeCode string            `gorm:"type:varchar(32);not null"`
	Type     CourierTypeDTO    `gorm:"foreignKey:TypeCode;references:Code"`
	Regions  []CourierRegionDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
	Shifts   []CourierShiftDTO  `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// CourierTypeDTO represents the transport type reference data: a code and
// the bag capacity it allows.
type CourierTypeDTO struct {
	Code     string          `gorm:"type:varchar(32);primaryKey"`
	Capacity decimal.Decimal `gorm:"type:decimal(12,3);not null"`
}

// TableName specifies the database table name for courier type entities.
func (CourierTypeDTO) TableName() string {
	return "courier_types"
}

// CourierRegionDTO links a courier to a region it serves. The pair is
// unique so a region cannot be attached to the same courier twice.
type CourierRegionDTO struct {
	ID        uint64 `gorm:"primaryKey"`
	CourierID uint64 `gorm:"not null;uniqueIndex:idx_courier_region"`
	RegionID  uint64 `gorm:"not null;uniqueIndex:idx_courier_region"`
}

// TableName specifies the database table name for courier region links.
func (CourierRegionDTO) TableName() string {
	return "courier_regions"
}

// CourierShiftDTO represents one work shift of a courier, stored as
// "HH:MM" boundary strings.
type CourierShiftDTO struct {
	ID        uint64 `gorm:"primaryKey"`
	CourierID uint64 `gorm:"not null;index"`
	StartTime string `gorm:"type:varchar(5);not null"`
	EndTime   string `gorm:"type:varchar(5);not null"`
}

// TableName specifies the database table name for courier shifts.
func (CourierShiftDTO) TableName() string {
	return "courier_shifts"
}

// RegionDTO represents a delivery region. Regions carry no attributes and
// are created lazily on first reference.
type RegionDTO struct {
	ID uint64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName specifies the database table name for regions.
func (RegionDTO) TableName() string {
	return "regions"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	regions := make([]CourierRegionDTO, 0, len(aggregate.RegionIDs()))
	for _, regionID := range aggregate.RegionIDs() {
		regions = append(regions, CourierRegionDTO{
			CourierID: aggregate.ID(),
			RegionID:  regionID,
		})
	}

	shifts := make([]CourierShiftDTO, 0, len(aggregate.Shifts()))
	for _, shift := range aggregate.Shifts() {
		shifts = append(shifts, CourierShiftDTO{
			CourierID: aggregate.ID(),
			StartTime: shift.Start().String(),
			EndTime:   shift.End().String(),
		})
	}

	return CourierDTO{
		ID:       aggregate.ID(),
		TypeCode: aggregate.Type().Code(),
		Regions:  regions,
		Shifts:   shifts,
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
// Requires the Type, Regions, and Shifts associations to be loaded.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	capacity, err := kernel.NewWeight(dto.Type.Capacity)
	if err != nil {
		return nil, err
	}

	courierType, err := courier.NewType(dto.Type.Code, capacity)
	if err != nil {
		return nil, err
	}

	regionIDs := make([]uint64, 0, len(dto.Regions))
	for _, region := range dto.Regions {
		regionIDs = append(regionIDs, region.RegionID)
	}

	shifts := make([]kernel.TimeInterval, 0, len(dto.Shifts))
	for _, shiftDTO := range dto.Shifts {
		shift, shiftErr := kernel.ParseTimeInterval(
			fmt.Sprintf("%s-%s", shiftDTO.StartTime, shiftDTO.EndTime))
		if shiftErr != nil {
			return nil, shiftErr
		}
		shifts = append(shifts, shift)
	}

	return courier.RestoreCourier(dto.ID, courierType, regionIDs, shifts)
}
