package buyerrepo

import (
	"context"
	"errors"
	"strings"

	"medmarket/internal/core/domain/model/buyer"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// GormBuyerRepository implements BuyerRepository using GORM.
type GormBuyerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBuyerRepository creates a new GORM buyer repository.
func NewGormBuyerRepository(db *gorm.DB, tracker aggregateTracker) *GormBuyerRepository {
	return &GormBuyerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new buyer to the database. A unique-constraint violation on the
// email or mobile column is reported as a duplicate-identity error.
func (r *GormBuyerRepository) Add(ctx context.Context, aggregate *buyer.Buyer) error {
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

// Get retrieves a buyer by ID.
func (r *GormBuyerRepository) Get(ctx context.Context, id kernel.UUID) (*buyer.Buyer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a buyer by login email.
func (r *GormBuyerRepository) GetByEmail(ctx context.Context, email string) (*buyer.Buyer, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto BuyerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("buyer", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// duplicateParam maps a postgres unique violation to the offending parameter
// name. The driver surfaces code 23505 with the constraint name.
func duplicateParam(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return "", false
	}

	if strings.Contains(pgErr.ConstraintName, "mobile") {
		return "mobile", true
	}
	return "email", true
}
