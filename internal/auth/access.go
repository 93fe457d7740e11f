package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
)

// Services treat a context without an identity as an internal caller (the
// CLI, tests, maintenance jobs). The HTTP boundary never lets an
// unauthenticated request reach a service.

// RequireAgency fails with domain.ErrForbidden for client users.
func RequireAgency(ctx context.Context) error {
	if id, ok := IdentityFromCtx(ctx); ok && !id.Role.IsAgency() {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin fails with domain.ErrForbidden unless the caller is an agency
// admin or internal.
func RequireAdmin(ctx context.Context) error {
	if id, ok := IdentityFromCtx(ctx); ok && !id.Role.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanAccess reports whether the caller may see data owned by companyID.
func CanAccess(ctx context.Context, companyID uuid.UUID) bool {
	id, ok := IdentityFromCtx(ctx)
	return !ok || id.CanAccessCompany(companyID)
}

// CompanyScope returns the company a client caller is confined to.
// Agency and internal callers are unscoped.
func CompanyScope(ctx context.Context) *uuid.UUID {
	id, ok := IdentityFromCtx(ctx)
	if !ok || !id.Role.IsClient() {
		return nil
	}
	return id.CompanyID
}

// ActorRole is the caller's role, or "" for internal callers.
func ActorRole(ctx context.Context) domain.UserRole {
	id, _ := IdentityFromCtx(ctx)
	return id.Role
}

// ResolveActor picks the actor recorded on an event. Agency callers may
// attribute an action to someone else; client callers always act as
// themselves. Without either, the action is unattributed.
func ResolveActor(ctx context.Context, explicit *uuid.UUID) *uuid.UUID {
	id, ok := IdentityFromCtx(ctx)
	switch {
	case ok && id.Role.IsClient():
		return &id.UserID
	case explicit != nil && *explicit != uuid.Nil:
		return explicit
	case ok:
		return &id.UserID
	default:
		return nil
	}
}
