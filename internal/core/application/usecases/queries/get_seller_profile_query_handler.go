package queries

import (
	"context"
	"database/sql"
	"errors"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerProfileQueryHandler retrieves a seller's own profile read model.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetSellerProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerProfileQueryHandler creates a handler for seller profile reads.
// Requires a GORM database connection for query execution.
func NewGetSellerProfileQueryHandler(db *gorm.DB) GetSellerProfileQueryHandler {
	return GetSellerProfileQueryHandler{db: db}
}

// Handle executes the query and returns the profile without the password hash.
func (h GetSellerProfileQueryHandler) Handle(ctx context.Context, query GetSellerProfileQuery) (SellerProfileResponse, error) {
	if err := query.Validate(); err != nil {
		return SellerProfileResponse{}, err
	}

	var (
		response           SellerProfileResponse
		id                 uuid.UUID
		longitude          float64
		latitude           float64
		docTax             int
		docLicense1        int
		docLicense2        int
		docPhotos          int
		verificationStatus int
		verifiedAt         sql.NullTime
		lastActiveAt       sql.NullTime
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			owner_name,
			store_name,
			email,
			mobile,
			tax_id,
			drug_license1,
			drug_license2,
			longitude,
			latitude,
			address,
			accepting_orders,
			doc_tax,
			doc_license1,
			doc_license2,
			doc_photos,
			verification_status,
			verified_at,
			total_orders,
			completed_orders,
			cancelled_orders,
			last_active_at,
			active,
			created_at
		FROM sellers
		WHERE id = ?
	`, query.Actor().ID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.OwnerName,
		&response.StoreName,
		&response.Email,
		&response.Mobile,
		&response.TaxID,
		&response.DrugLicense1,
		&response.DrugLicense2,
		&longitude,
		&latitude,
		&response.Address,
		&response.AcceptingOrders,
		&docTax,
		&docLicense1,
		&docLicense2,
		&docPhotos,
		&verificationStatus,
		&verifiedAt,
		&response.Metrics.TotalOrders,
		&response.Metrics.CompletedOrders,
		&response.Metrics.CancelledOrders,
		&lastActiveAt,
		&response.Active,
		&response.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SellerProfileResponse{}, errs.NewObjectNotFoundError("sellerId", query.Actor().ID().String())
		}
		return SellerProfileResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return SellerProfileResponse{}, err
	}
	if response.Location, err = kernel.NewGeoPoint(longitude, latitude); err != nil {
		return SellerProfileResponse{}, err
	}

	response.DocumentTax = seller.DocumentStatus(docTax).String()
	response.DocumentLicense1 = seller.DocumentStatus(docLicense1).String()
	response.DocumentLicense2 = seller.DocumentStatus(docLicense2).String()
	response.DocumentPhotos = seller.DocumentStatus(docPhotos).String()
	response.VerificationStatus = seller.VerificationStatus(verificationStatus).String()

	if verifiedAt.Valid {
		response.VerifiedAt = &verifiedAt.Time
	}
	if lastActiveAt.Valid {
		response.Metrics.LastActiveAt = &lastActiveAt.Time
	}

	return response, nil
}
