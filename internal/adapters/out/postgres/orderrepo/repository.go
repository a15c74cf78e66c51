package orderrepo

import (
	"context"
	"errors"
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/order"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// haversineSQL computes the great-circle distance in meters between an order
// row and a bound center. Bind order: latitude, latitude, longitude.
const haversineSQL = `2 * 6371000.0 * asin(sqrt(power(sin(radians(latitude - ?) / 2), 2) + cos(radians(?)) * cos(radians(latitude)) * power(sin(radians(longitude - ?) / 2), 2)))`

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items to the database. The seller
// binding and the initial status go in with the same insert, so a stored
// order is never visible unbound.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateStatus persists a status transition with a compare-and-swap on the
// version the aggregate was loaded with. A concurrent transition makes the
// swap miss; the caller gets a conflict error and must reload.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":     int(aggregate.Status()),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("version")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByBuyer retrieves the buyer's orders, newest first.
func (r *GormOrderRepository) GetAllByBuyer(ctx context.Context, buyerID kernel.UUID) ([]*order.Order, error) {
	if err := buyerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("buyer_id = ?", buyerID.Bytes()).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllBySellerWithin retrieves the seller's orders whose origin lies within
// radiusM meters of the center, newest first.
func (r *GormOrderRepository) GetAllBySellerWithin(ctx context.Context, sellerID kernel.UUID, center kernel.GeoPoint, radiusM float64) ([]*order.Order, error) {
	if err := errors.Join(sellerID.Validate(), center.Validate()); err != nil {
		return nil, err
	}
	if radiusM < 0 {
		return nil, errs.NewValueIsInvalidError("radiusM")
	}

	lat := center.Latitude()
	lon := center.Longitude()

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("seller_id = ?", sellerID.Bytes()).
		Where(haversineSQL+" <= ?", lat, lat, lon, radiusM).
		Order("created_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetMetricsBySeller computes the seller's order-history counters from stored
// orders: total, delivered, and cancelled counts plus the latest activity
// timestamp.
func (r *GormOrderRepository) GetMetricsBySeller(ctx context.Context, sellerID kernel.UUID) (seller.Metrics, error) {
	if err := sellerID.Validate(); err != nil {
		return seller.Metrics{}, err
	}

	var row struct {
		TotalOrders     int64
		CompletedOrders int64
		CancelledOrders int64
		LastActiveAt    *time.Time
	}
	err := r.db.WithContext(ctx).Raw(
		`SELECT COUNT(*) AS total_orders,
		        COUNT(*) FILTER (WHERE status = ?) AS completed_orders,
		        COUNT(*) FILTER (WHERE status = ?) AS cancelled_orders,
		        MAX(updated_at) AS last_active_at
		 FROM orders WHERE seller_id = ?`,
		int(order.Delivered), int(order.Cancelled), sellerID.Bytes(),
	).Scan(&row).Error
	if err != nil {
		return seller.Metrics{}, err
	}

	return seller.Metrics{
		TotalOrders:     row.TotalOrders,
		CompletedOrders: row.CompletedOrders,
		CancelledOrders: row.CancelledOrders,
		LastActiveAt:    row.LastActiveAt,
	}, nil
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}
