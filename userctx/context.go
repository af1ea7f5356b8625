package userctx

import (
	"context"
	"fmt"
)

// Context key type
type contextKey string

const actorKey contextKey = "actor"

// Actor identifies who performed an action, for audit records
type Actor struct {
	ID   int64
	Name string
}

// Label renders the actor for an audit log row
func (a Actor) Label() string {
	if a.Name == "" {
		return fmt.Sprintf("%d", a.ID)
	}
	return fmt.Sprintf("%d (%s)", a.ID, a.Name)
}

// WithActor adds the acting user to the context
func WithActor(ctx context.Context, id int64, name string) context.Context {
	return context.WithValue(ctx, actorKey, Actor{ID: id, Name: name})
}

// GetActor retrieves the acting user from the context
func GetActor(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

// ActorLabel retrieves the acting user's audit label, or "system"
func ActorLabel(ctx context.Context) string {
	if actor, ok := GetActor(ctx); ok {
		return actor.Label()
	}
	return "system"
}
