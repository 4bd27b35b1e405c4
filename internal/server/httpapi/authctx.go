package httpapi

import (
	"context"

	"github.com/platefeed/server/internal/model"
)

type ctxKey string

const identityKey ctxKey = "httpapi.identity"

// withIdentity stores the authenticated identity in the request context.
func withIdentity(ctx context.Context, id *model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// identityFromCtx fetches the identity the access guard attached.
func identityFromCtx(ctx context.Context) (*model.Identity, bool) {
	id, ok := ctx.Value(identityKey).(*model.Identity)
	return id, ok
}
