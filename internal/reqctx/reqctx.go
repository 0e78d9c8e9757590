// internal/reqctx/reqctx.go
package reqctx

import (
	"context"
	"ecowsco/internal/models"
)

type key int

const (
	keyRequestID key = iota
	keyPrincipal
	keyVendor
)

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, keyRequestID, id)
}

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyRequestID).(string)
	return v, ok
}

func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, keyPrincipal, p)
}

func GetPrincipal(ctx context.Context) (models.Principal, bool) {
	v, ok := ctx.Value(keyPrincipal).(models.Principal)
	return v, ok
}

// WithVendor кладёт в контекст продавца, уже проверенного Access Guard.
func WithVendor(ctx context.Context, v *models.Vendor) context.Context {
	return context.WithValue(ctx, keyVendor, v)
}

func GetVendor(ctx context.Context) (*models.Vendor, bool) {
	v, ok := ctx.Value(keyVendor).(*models.Vendor)
	return v, ok && v != nil
}
