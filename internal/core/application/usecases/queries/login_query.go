package queries

import (
	"errors"

	"medmarket/internal/core/domain/model/auth"
	"medmarket/internal/core/domain/model/kernel"
	"medmarket/internal/pkg/errs"
	"medmarket/internal/pkg/guard"
)

var ErrLoginQueryIsNotConstructed = errors.New(
	"LoginQuery must be created via NewLoginQuery constructor",
)

// LoginQuery exchanges account credentials for a signed access token.
//
// Example:
//
//	query, err := NewLoginQuery(auth.RoleBuyer, "asha@example.in", "s3cret")
//	if err != nil {
//	    return fmt.Errorf("invalid login request: %w", err)
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrForbidden) {
//	    // wrong email or password; which one is not disclosed
//	}
type LoginQuery struct { //nolint:recvcheck //using for validation
	role     auth.Role
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginQuery creates a login request for the given role.
func NewLoginQuery(role auth.Role, email, password string) (LoginQuery, error) {
	query := LoginQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setRole(role),
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return LoginQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginQuery) Validate() error {
	return q.guard.Validate(ErrLoginQueryIsNotConstructed)
}

// Role returns the account side being logged into.
func (q LoginQuery) Role() auth.Role {
	return q.role
}

// Email returns the login email.
func (q LoginQuery) Email() string {
	return q.email
}

// Password returns the plaintext password to verify.
func (q LoginQuery) Password() string {
	return q.password
}

func (q *LoginQuery) setRole(role auth.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	q.role = role
	return nil
}

func (q *LoginQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	q.email = email
	return nil
}

func (q *LoginQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// LoginResponse carries the signed token and the authenticated identity.
type LoginResponse struct {
	Token string
	ID    kernel.UUID
	Role  string
}
