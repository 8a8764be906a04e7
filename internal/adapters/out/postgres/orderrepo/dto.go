// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling the conversion between domain entities and their
// relational representation across the orders and order_items tables.
package orderrepo

import (
	"time"

	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the aggregate, so GORM's automatic time tracking
// is disabled for them.
type OrderDTO struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID            uuid.UUID      `gorm:"type:uuid;index"`
	VendorID              uuid.UUID      `gorm:"type:uuid;index"`
	RiderID               *uuid.UUID     `gorm:"type:uuid;index"`
	Items                 []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	ItemCount             int
	Subtotal              int64
	ServiceFee            int64
	VAT                   int64 `gorm:"column:vat"`
	DeliveryFee           int64
	Total                 int64
	Status                int `gorm:"index"`
	PaymentStatus         int
	CreatedAt             time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime:false"`
	EstimatedDeliveryTime *time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one cart line of an order. Lines are value objects
// with no identity of their own; the position within the order keys them.
type OrderItemDTO struct {
	OrderID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineNo              int       `gorm:"primaryKey"`
	MenuItemID          uuid.UUID `gorm:"type:uuid"`
	UnitPrice           int64
	Quantity            int
	SpecialInstructions string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.Rider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:             aggregate.ID().Bytes(),
			LineNo:              i,
			MenuItemID:          item.MenuItemID().Bytes(),
			UnitPrice:           item.UnitPrice().Amount(),
			Quantity:            item.Quantity(),
			SpecialInstructions: item.SpecialInstructions(),
		})
	}

	totals := aggregate.Totals()
	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		VendorID:              aggregate.VendorID().Bytes(),
		RiderID:               riderID,
		Items:                 itemDTOs,
		ItemCount:             totals.ItemCount(),
		Subtotal:              totals.Subtotal().Amount(),
		ServiceFee:            totals.ServiceFee().Amount(),
		VAT:                   totals.VAT().Amount(),
		DeliveryFee:           totals.DeliveryFee().Amount(),
		Total:                 totals.Total().Amount(),
		Status:                int(aggregate.Status()),
		PaymentStatus:         int(aggregate.PaymentStatus()),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines, totals, status, and
// rider assignment using RestoreOrder, so corrupt rows fail loudly.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		riderID = &rID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemFromDTO(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	totals, err := totalsFromDTO(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		vendorID,
		riderID,
		items,
		totals,
		order.Status(dto.Status),
		order.PaymentStatus(dto.PaymentStatus),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.EstimatedDeliveryTime,
	)
}

func totalsFromDTO(dto OrderDTO) (order.Totals, error) {
	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return order.Totals{}, err
	}

	serviceFee, err := kernel.NewMoney(dto.ServiceFee)
	if err != nil {
		return order.Totals{}, err
	}

	vat, err := kernel.NewMoney(dto.VAT)
	if err != nil {
		return order.Totals{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Totals{}, err
	}

	return order.NewTotals(dto.ItemCount, subtotal, serviceFee, vat, deliveryFee), nil
}

func itemFromDTO(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(menuItemID, unitPrice, dto.Quantity, dto.SpecialInstructions)
}
