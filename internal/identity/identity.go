// Package identity resolves the acting user for mutations. The API has no
// authentication yet, so the default provider returns a fixed, configured
// actor; swapping in a real authentication collaborator means replacing the
// Provider, not touching the resolver layer.
package identity

import (
	"context"

	"github.com/easyevent/api/internal/domain/entity"
)

// Provider yields the id of the user performing the current operation.
type Provider interface {
	CurrentUserID(ctx context.Context) (string, error)
}

type ctxKey struct{}

// ContextWithUserID returns a context carrying an authenticated user id.
// Transport middleware calls this after verifying a bearer token.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext reports the authenticated user id carried by ctx, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// StaticProvider always resolves to one configured user.
type StaticProvider struct {
	UserID string
}

func (p StaticProvider) CurrentUserID(context.Context) (string, error) {
	if p.UserID == "" {
		return "", entity.ErrNoIdentity
	}
	return p.UserID, nil
}

// TokenProvider prefers the user id placed in the context by the bearer
// middleware and falls back to another provider when the request carried no
// token.
type TokenProvider struct {
	Fallback Provider
}

func (p TokenProvider) CurrentUserID(ctx context.Context) (string, error) {
	if id, ok := UserIDFromContext(ctx); ok {
		return id, nil
	}
	if p.Fallback != nil {
		return p.Fallback.CurrentUserID(ctx)
	}
	return "", entity.ErrNoIdentity
}
