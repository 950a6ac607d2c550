// Package lock serializes bookings per employee so the conflict check and the insert act atomically.
package lock

import "context"

// Unlock releases a held lock. Calling it more than once is a no-op.
type Unlock func()

// Locker grants exclusive ownership of a key until the returned Unlock is called.
// Lock blocks until the key is free or ctx is done.
type Locker interface {
	Lock(ctx context.Context, key string) (Unlock, error)
}
