// Package sellerrepo provides data transfer objects and mapping functions for
// seller persistence. It implements the repository pattern for the seller
// domain aggregate, handling the conversion between domain entities and
// database representations, including the geospatial columns used for order
// assignment.
package sellerrepo

import (
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"

	"github.com/google/uuid"
)

// SellerDTO represents the database structure for persisting seller
// aggregates. The location is stored as plain longitude/latitude columns so
// the nearest-seller query can compute great-circle distances in SQL.
type SellerDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerName          string
	StoreName          string
	Email              string `gorm:"uniqueIndex"`
	Mobile             string `gorm:"uniqueIndex"`
	TaxID              string `gorm:"uniqueIndex"`
	DrugLicense1       string
	DrugLicense2       string
	PasswordHash       string
	Longitude          float64
	Latitude           float64
	Address            string
	AcceptingOrders    bool `gorm:"index"`
	AcceptingVersion   int64
	DocTax             int
	DocLicense1        int
	DocLicense2        int
	DocPhotos          int
	VerificationStatus int
	VerifiedAt         *time.Time
	TotalOrders        int64
	CompletedOrders    int64
	CancelledOrders    int64
	LastActiveAt       *time.Time
	Active             bool `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for seller entities.
func (SellerDTO) TableName() string {
	return "sellers"
}

// fromDomain converts a seller domain aggregate to its database representation.
func fromDomain(aggregate *seller.Seller) SellerDTO {
	metrics := aggregate.Metrics()
	documents := aggregate.Documents()

	return SellerDTO{
		ID:                 aggregate.ID().Bytes(),
		OwnerName:          aggregate.OwnerName(),
		StoreName:          aggregate.StoreName(),
		Email:              aggregate.Email(),
		Mobile:             aggregate.Mobile(),
		TaxID:              aggregate.TaxID(),
		DrugLicense1:       aggregate.DrugLicense1(),
		DrugLicense2:       aggregate.DrugLicense2(),
		PasswordHash:       aggregate.PasswordHash(),
		Longitude:          aggregate.Location().Longitude(),
		Latitude:           aggregate.Location().Latitude(),
		Address:            aggregate.Address(),
		AcceptingOrders:    aggregate.IsAcceptingOrders(),
		AcceptingVersion:   aggregate.AcceptingVersion(),
		DocTax:             int(documents.Tax),
		DocLicense1:        int(documents.License1),
		DocLicense2:        int(documents.License2),
		DocPhotos:          int(documents.Photos),
		VerificationStatus: int(aggregate.VerificationStatus()),
		VerifiedAt:         aggregate.VerifiedAt(),
		TotalOrders:        metrics.TotalOrders,
		CompletedOrders:    metrics.CompletedOrders,
		CancelledOrders:    metrics.CancelledOrders,
		LastActiveAt:       metrics.LastActiveAt,
		Active:             aggregate.IsActive(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a seller domain aggregate.
func toDomain(dto SellerDTO) (*seller.Seller, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return seller.RestoreSeller(
		id,
		dto.OwnerName,
		dto.StoreName,
		dto.Email,
		dto.Mobile,
		dto.TaxID,
		dto.DrugLicense1,
		dto.DrugLicense2,
		dto.PasswordHash,
		location,
		dto.Address,
		dto.AcceptingOrders,
		dto.AcceptingVersion,
		seller.DocumentFlags{
			Tax:      seller.DocumentStatus(dto.DocTax),
			License1: seller.DocumentStatus(dto.DocLicense1),
			License2: seller.DocumentStatus(dto.DocLicense2),
			Photos:   seller.DocumentStatus(dto.DocPhotos),
		},
		seller.VerificationStatus(dto.VerificationStatus),
		dto.VerifiedAt,
		seller.Metrics{
			TotalOrders:     dto.TotalOrders,
			CompletedOrders: dto.CompletedOrders,
			CancelledOrders: dto.CancelledOrders,
			LastActiveAt:    dto.LastActiveAt,
		},
		dto.Active,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
