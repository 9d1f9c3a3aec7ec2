package httpapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/fantasy-fitness/internal/domain/user"
	"github.com/riskibarqy/fantasy-fitness/internal/usecase"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// requirePrincipal returns the caller attached by RequireAuth. Handlers
// mounted without the middleware always get ErrUnauthorized.
func requirePrincipal(ctx context.Context) (user.Principal, error) {
	p, _ := ctx.Value(principalKey{}).(user.Principal)
	if strings.TrimSpace(p.UserID) == "" {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return p, nil
}
