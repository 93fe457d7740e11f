package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/reviso-backend/internal/domain"
	"github.com/heartmarshall/reviso-backend/pkg/ctxutil"
)

// Identity is the authenticated caller carried by an access token.
// CompanyID is set for client users only.
type Identity struct {
	UserID    uuid.UUID
	Role      domain.UserRole
	CompanyID *uuid.UUID
}

// CanAccessCompany reports whether the caller may see data owned by companyID.
// Agency users see every company; client users only their own.
func (i Identity) CanAccessCompany(companyID uuid.UUID) bool {
	if i.Role.IsAgency() {
		return true
	}
	return i.CompanyID != nil && *i.CompanyID == companyID
}

// WithIdentity stores the identity in the context.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	ctx = ctxutil.WithUserID(ctx, id.UserID)
	ctx = ctxutil.WithRole(ctx, string(id.Role))
	if id.CompanyID != nil {
		ctx = ctxutil.WithCompanyID(ctx, *id.CompanyID)
	}
	return ctx
}

// IdentityFromCtx rebuilds the caller identity from the context.
// Returns false when the request is unauthenticated or the role is unknown.
func IdentityFromCtx(ctx context.Context) (Identity, bool) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Identity{}, false
	}
	role := domain.UserRole(ctxutil.RoleFromCtx(ctx))
	if !role.IsValid() {
		return Identity{}, false
	}
	id := Identity{UserID: userID, Role: role}
	if companyID, ok := ctxutil.CompanyIDFromCtx(ctx); ok {
		id.CompanyID = &companyID
	}
	if role.IsClient() && id.CompanyID == nil {
		return Identity{}, false
	}
	return id, true
}
