// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// domain aggregate, handling the conversion between domain entities and
// database representations. Line items live in their own table and are
// written together with the order row.
package orderrepo

import (
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The origin is stored as plain longitude/latitude columns so the seller
// listing query can compute great-circle distances in SQL.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	BuyerID           uuid.UUID `gorm:"type:uuid;index"`
	SellerID          uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount       float64
	Longitude         float64
	Latitude          float64
	Address           string
	PrescriptionImage string
	Status            int `gorm:"index"`
	Version           int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Items             []ItemDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one line item row belonging to an order.
type ItemDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID    string
	Name         string
	Manufacturer string
	UnitPrice    float64
	Quantity     int
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			ProductID:    item.ProductID(),
			Name:         item.Name(),
			Manufacturer: item.Manufacturer(),
			UnitPrice:    item.UnitPrice(),
			Quantity:     item.Quantity(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		BuyerID:           aggregate.BuyerID().Bytes(),
		SellerID:          aggregate.SellerID().Bytes(),
		TotalAmount:       aggregate.TotalAmount(),
		Longitude:         aggregate.Origin().Longitude(),
		Latitude:          aggregate.Origin().Latitude(),
		Address:           aggregate.Address(),
		PrescriptionImage: aggregate.PrescriptionImage(),
		Status:            int(aggregate.Status()),
		Version:           aggregate.Version(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Items:             itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	origin, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(
			itemDTO.ProductID,
			itemDTO.Name,
			itemDTO.Manufacturer,
			itemDTO.UnitPrice,
			itemDTO.Quantity,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		buyerID,
		sellerID,
		items,
		dto.TotalAmount,
		origin,
		dto.Address,
		dto.PrescriptionImage,
		order.Status(dto.Status),
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
