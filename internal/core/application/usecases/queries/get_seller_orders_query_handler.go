package queries

import (
	"context"
	"database/sql"
	"errors"

	"medmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetSellerOrdersQueryHandler lists a seller's assigned orders whose origin
// lies within the listing radius of the seller's current location, newest
// first. The distance filter runs in SQL with the same great-circle formula
// the domain uses.
type GetSellerOrdersQueryHandler struct {
	db             *gorm.DB
	defaultRadiusM float64
}

// NewGetSellerOrdersQueryHandler creates a handler for seller order listings.
//
// Parameters:
//   - db: GORM database connection for query execution
//   - defaultRadiusM: listing radius in meters used when the query carries none
func NewGetSellerOrdersQueryHandler(db *gorm.DB, defaultRadiusM float64) GetSellerOrdersQueryHandler {
	return GetSellerOrdersQueryHandler{
		db:             db,
		defaultRadiusM: defaultRadiusM,
	}
}

// Handle executes the query and returns the seller's nearby orders with
// their line items. A seller with no nearby orders gets an empty slice.
func (h GetSellerOrdersQueryHandler) Handle(ctx context.Context, query GetSellerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var longitude, latitude float64
	row := h.db.WithContext(ctx).Raw(
		`SELECT longitude, latitude FROM sellers WHERE id = ?`,
		query.Actor().ID().Bytes(),
	).Row()
	if err := row.Scan(&longitude, &latitude); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.NewObjectNotFoundErrorWithCause("sellerId", query.Actor().ID().String(), err)
		}
		return nil, err
	}

	radiusM := query.RadiusM()
	if radiusM == 0 {
		radiusM = h.defaultRadiusM
	}

	rows, err := h.db.WithContext(ctx).Raw(
		`SELECT `+orderColumns+`
		FROM orders
		WHERE seller_id = ?
		  AND `+haversineSQL+` <= ?
		ORDER BY created_at DESC`,
		query.Actor().ID().Bytes(),
		latitude, latitude, longitude,
		radiusM,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]OrderResponse, 0)
	for rows.Next() {
		response, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = loadItems(ctx, h.db, responses); err != nil {
		return nil, err
	}

	return responses, nil
}
