// Package actor carries the identity of the user performing the current
// request. The actor is bound to the request's context.Context by the auth
// middleware and read back by the audit stamping hooks, so services never
// thread a user parameter through every call. Context scoping gives each
// concurrent request an isolated binding that disappears when the request
// ends, so a reused goroutine can never observe a stale actor.
package actor

import "context"

// Actor identifies the user performing an operation
type Actor struct {
	ID            uint   `json:"id"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

type contextKey struct{}

// WithActor returns a context with the actor bound to it
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the actor bound to the context, if any
func FromContext(ctx context.Context) (Actor, bool) {
	if ctx == nil {
		return Actor{}, false
	}
	a, ok := ctx.Value(contextKey{}).(Actor)
	return a, ok
}

// Current returns the authenticated actor from the context, or false when no
// actor is bound or the binding is unauthenticated.
func Current(ctx context.Context) (Actor, bool) {
	a, ok := FromContext(ctx)
	if !ok || !a.Authenticated {
		return Actor{}, false
	}
	return a, true
}
