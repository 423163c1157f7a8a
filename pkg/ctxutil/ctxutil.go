package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/expensio-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated caller identity in the context.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the caller identity from the context.
// Returns false if the value is missing or carries a nil user ID.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok || actor.UserID == uuid.Nil {
		return domain.Actor{}, false
	}
	return actor, true
}

// IsAdminCtx reports whether the context carries an authenticated admin.
func IsAdminCtx(ctx context.Context) bool {
	actor, ok := ActorFromCtx(ctx)
	return ok && actor.IsAdmin()
}

// CanReviewCtx reports whether the context carries a manager or admin.
func CanReviewCtx(ctx context.Context) bool {
	actor, ok := ActorFromCtx(ctx)
	return ok && actor.CanReview()
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
