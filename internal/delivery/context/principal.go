package context

import (
	"context"

	"teka/internal/domain/entity"
)

func WithPrincipal(ctx context.Context, principal *entity.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, principal)
}

// GetPrincipal returns nil for anonymous requests.
func GetPrincipal(ctx context.Context) *entity.Principal {
	principal, _ := ctx.Value(keyPrincipal).(*entity.Principal)

	return principal
}
