// Package riderrepo provides data transfer objects and mapping functions for
// rider persistence. It implements the repository pattern for the rider
// aggregate, handling the conversion between domain entities and their
// database representation.
package riderrepo

import (
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The active order column is indexed because dispatch queries filter on it.
type RiderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Available     bool       `gorm:"index"`
	ActiveOrderID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	var activeOrderID *uuid.UUID
	if id := aggregate.ActiveOrder(); id != nil {
		raw := id.Bytes()
		activeOrderID = &raw
	}

	return RiderDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Available:     aggregate.IsAvailable(),
		ActiveOrderID: activeOrderID,
	}
}

// toDomain converts a database DTO to a rider domain aggregate using
// RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeOrderID *kernel.UUID
	if dto.ActiveOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.ActiveOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}

		activeOrderID = &oID
	}

	return rider.RestoreRider(id, dto.Name, dto.Available, activeOrderID)
}
