// Package buyerrepo provides data transfer objects and mapping functions for
// buyer persistence. It implements the repository pattern for the buyer
// domain aggregate, handling the conversion between domain entities and
// database representations.
package buyerrepo

import (
	"time"

	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BuyerDTO represents the database structure for persisting buyer aggregates.
type BuyerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Mobile       string `gorm:"uniqueIndex"`
	PasswordHash string
	Address      string
	Pincode      string
	CreatedAt    time.Time
}

// TableName specifies the database table name for buyer entities.
func (BuyerDTO) TableName() string {
	return "buyers"
}

// fromDomain converts a buyer domain aggregate to its database representation.
func fromDomain(aggregate *buyer.Buyer) BuyerDTO {
	return BuyerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		Mobile:       aggregate.Mobile(),
		PasswordHash: aggregate.PasswordHash(),
		Address:      aggregate.Address(),
		Pincode:      aggregate.Pincode(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to a buyer domain aggregate.
func toDomain(dto BuyerDTO) (*buyer.Buyer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return buyer.RestoreBuyer(
		id,
		dto.Name,
		dto.Email,
		dto.Mobile,
		dto.PasswordHash,
		dto.Address,
		dto.Pincode,
		dto.CreatedAt,
	)
}
