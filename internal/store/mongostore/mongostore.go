// Package mongostore persists clients and appointments as documents in
// MongoDB, one collection per entity.
package mongostore

import (
	"context"
	"time"
)

const (
	ClientsCollection      = "clients"
	AppointmentsCollection = "appointments"

	opTimeout    = 5 * time.Second
	indexTimeout = 10 * time.Second
)

// withTimeout bounds a single driver call.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d)
}

// now is truncated to milliseconds, the precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
