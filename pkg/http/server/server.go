package http_server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New builds the underlying net/http server. The request contexts inherit
// from ctx, so cancelling the application context unwinds in-flight handlers.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", config.Port),
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
		IdleTimeout:  config.Timeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
}
