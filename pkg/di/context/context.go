package shortcontext

import (
	"context"
	"os/signal"
	"syscall"
)

// New returns the application root context, cancelled on SIGINT/SIGTERM.
func New() (context.Context, func()) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
