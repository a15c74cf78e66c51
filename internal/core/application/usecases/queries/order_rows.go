package queries

import (
	"context"
	"database/sql"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// orderColumns is the select list shared by the order read queries; the
// scan order must match scanOrder.
const orderColumns = `
	id,
	buyer_id,
	seller_id,
	total_amount,
	longitude,
	latitude,
	address,
	prescription_image,
	status,
	version,
	created_at,
	updated_at
`

// haversineSQL computes the great-circle distance in meters between a row's
// longitude/latitude columns and two bound parameters: latitude first, then
// longitude again for the second sin term. The constant is the mean Earth
// radius in meters, matching the in-process distance computation.
const haversineSQL = `
	2 * 6371000.0 * asin(sqrt(
		power(sin(radians(latitude - ?) / 2), 2) +
		cos(radians(?)) * cos(radians(latitude)) *
		power(sin(radians(longitude - ?) / 2), 2)
	))
`

func scanOrder(rows *sql.Rows) (OrderResponse, error) {
	var (
		response  OrderResponse
		id        uuid.UUID
		buyerID   uuid.UUID
		sellerID  uuid.UUID
		longitude float64
		latitude  float64
		status    int
	)

	err := rows.Scan(
		&id,
		&buyerID,
		&sellerID,
		&response.TotalAmount,
		&longitude,
		&latitude,
		&response.Address,
		&response.PrescriptionImage,
		&status,
		&response.Version,
		&response.CreatedAt,
		&response.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return OrderResponse{}, err
	}
	if response.Origin, err = kernel.NewGeoPoint(longitude, latitude); err != nil {
		return OrderResponse{}, err
	}
	response.Status = order.Status(status).String()

	return response, nil
}

// loadItems fetches the line items for the given orders and attaches them
// to the responses in place, keyed by order ID.
func loadItems(ctx context.Context, db *gorm.DB, responses []OrderResponse) error {
	if len(responses) == 0 {
		return nil
	}

	index := make(map[uuid.UUID]*OrderResponse, len(responses))
	ids := make([]uuid.UUID, 0, len(responses))
	for i := range responses {
		raw := responses[i].ID.Bytes()
		index[raw] = &responses[i]
		ids = append(ids, raw)
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			name,
			manufacturer,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			item    OrderItemResponse
		)

		err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.Name,
			&item.Manufacturer,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return err
		}

		if response, ok := index[orderID]; ok {
			response.Items = append(response.Items, item)
		}
	}

	return rows.Err()
}
