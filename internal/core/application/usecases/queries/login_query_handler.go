package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/core/ports"
	"medmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler verifies account credentials and issues an access token.
//
// A wrong email and a wrong password both fail with the same forbidden
// error so the endpoint cannot be used to probe which emails are registered.
type LoginQueryHandler struct {
	db     *gorm.DB
	hasher ports.PasswordHasher
	gate   ports.AccessGate
}

// NewLoginQueryHandler creates a handler for credential verification.
func NewLoginQueryHandler(db *gorm.DB, hasher ports.PasswordHasher, gate ports.AccessGate) LoginQueryHandler {
	return LoginQueryHandler{
		db:     db,
		hasher: hasher,
		gate:   gate,
	}
}

// Handle verifies the credentials and returns a signed token for the account.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	table := "buyers"
	if query.Role() == auth.RoleSeller {
		table = "sellers"
	}

	var (
		rawID        uuid.UUID
		passwordHash string
	)
	row := h.db.WithContext(ctx).Raw(
		fmt.Sprintf(`SELECT id, password_hash FROM %s WHERE email = ?`, table),
		query.Email(),
	).Row()
	if err := row.Scan(&rawID, &passwordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoginResponse{}, errs.NewForbiddenErrorWithCause(
				fmt.Errorf("unknown %s email %q", query.Role(), query.Email()))
		}
		return LoginResponse{}, err
	}

	if err := h.hasher.Compare(passwordHash, query.Password()); err != nil {
		return LoginResponse{}, errs.NewForbiddenErrorWithCause(
			fmt.Errorf("password mismatch for %s %q: %w", query.Role(), query.Email(), err))
	}

	id, err := kernel.UUIDFromBytes(rawID[:])
	if err != nil {
		return LoginResponse{}, err
	}

	actor, err := auth.NewActor(query.Role(), id)
	if err != nil {
		return LoginResponse{}, err
	}

	token, err := h.gate.IssueToken(actor)
	if err != nil {
		return LoginResponse{}, err
	}

	return LoginResponse{
		Token: token,
		ID:    id,
		Role:  query.Role().String(),
	}, nil
}
