package domain

import (
	"context"

	"github.com/forgecrafted/domainkit/pkg/result"
)

// UseCase is an application-layer operation: one request in, one response
// out, failures through the Result error arm.
type UseCase[Req, Res any] interface {
	Execute(ctx context.Context, req Req) result.Result[Res]
}

// UseCaseFunc adapts a function to the UseCase interface.
type UseCaseFunc[Req, Res any] func(ctx context.Context, req Req) result.Result[Res]

func (f UseCaseFunc[Req, Res]) Execute(ctx context.Context, req Req) result.Result[Res] {
	return f(ctx, req)
}
