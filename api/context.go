package api

import (
	"context"

	"github.com/bruxa61/PortfolioRAFA/models"
)

type keyType string

const actorKey keyType = "actor"

// ctxWithActor adds the authenticated user to the context
func ctxWithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// actorFromCtx retrieves the authenticated user, if any
func actorFromCtx(ctx context.Context) (*models.User, bool) {
	actor, ok := ctx.Value(actorKey).(*models.User)
	return actor, ok && actor != nil
}
