package sellerrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/domain/model/seller"
	"medmarket/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// haversineSQL computes the great-circle distance in meters between a seller
// row and a bound origin. Bind order: latitude, latitude, longitude.
const haversineSQL = `2 * 6371000.0 * asin(sqrt(power(sin(radians(latitude - ?) / 2), 2) + cos(radians(?)) * cos(radians(latitude)) * power(sin(radians(longitude - ?) / 2), 2)))`

// GormSellerRepository implements SellerRepository using GORM.
type GormSellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRepository creates a new GORM seller repository.
func NewGormSellerRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRepository {
	return &GormSellerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller to the database. A unique-constraint violation on
// the email, mobile, or tax ID column is reported as a duplicate-identity
// error.
func (r *GormSellerRepository) Add(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if param, ok := duplicateParam(err); ok {
			return errs.NewDuplicateIdentityErrorWithCause(param, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves profile, document, metrics, and activity changes to an
// existing seller. The accepting columns are never written here; they carry
// their own optimistic token and belong to UpdateAccepting.
func (r *GormSellerRepository) Update(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SellerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "accepting_orders", "accepting_version", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if param, ok := duplicateParam(result.Error); ok {
			return errs.NewDuplicateIdentityErrorWithCause(param, result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("seller", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateAccepting persists the accepting flag with a compare-and-swap on the
// accepting version the aggregate was loaded with. A concurrent flip makes
// the swap miss; the caller gets a conflict error and must reload.
func (r *GormSellerRepository) UpdateAccepting(ctx context.Context, aggregate *seller.Seller) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SellerDTO{}).
		Where("id = ? AND accepting_version = ?", aggregate.ID().Bytes(), aggregate.AcceptingVersion()).
		Updates(map[string]any{
			"accepting_orders":  aggregate.IsAcceptingOrders(),
			"accepting_version": gorm.Expr("accepting_version + 1"),
			"updated_at":        time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&SellerDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("seller", aggregate.ID().String())
		}
		return errs.NewConflictError("acceptingVersion")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a seller by ID.
func (r *GormSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Seller, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a seller by login email.
func (r *GormSellerRepository) GetByEmail(ctx context.Context, email string) (*seller.Seller, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAssignableWithin retrieves the active, accepting sellers whose
// location lies within radiusM meters of the origin, ordered nearest first
// with ties broken by ID ascending.
func (r *GormSellerRepository) GetAllAssignableWithin(ctx context.Context, origin kernel.GeoPoint, radiusM float64) ([]*seller.Seller, error) {
	if err := origin.Validate(); err != nil {
		return nil, err
	}
	if radiusM < 0 {
		return nil, errs.NewValueIsInvalidError("radiusM")
	}

	lat := origin.Latitude()
	lon := origin.Longitude()

	var dtos []SellerDTO
	err := r.db.WithContext(ctx).Raw(
		`SELECT * FROM (SELECT *, `+haversineSQL+` AS distance_m FROM sellers) candidates
		 WHERE active AND accepting_orders AND distance_m <= ?
		 ORDER BY distance_m ASC, id ASC`,
		lat, lat, lon, radiusM,
	).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllActive retrieves every active seller.
func (r *GormSellerRepository) GetAllActive(ctx context.Context) ([]*seller.Seller, error) {
	var dtos []SellerDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "active").Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []SellerDTO) ([]*seller.Seller, error) {
	sellers := make([]*seller.Seller, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		sellers = append(sellers, aggregate)
	}

	return sellers, nil
}

// duplicateParam maps a postgres unique violation to the offending parameter
// name. The driver surfaces code 23505 with the constraint name.
func duplicateParam(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "mobile"):
		return "mobile", true
	case strings.Contains(pgErr.ConstraintName, "tax"):
		return "taxId", true
	default:
		return "email", true
	}
}
