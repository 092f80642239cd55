package async

import (
	"context"
	"runtime/debug"

	"github.com/m-mizutani/ctxlog"
)

// Dispatch runs handler in a new goroutine with panic recovery. The handler's
// context keeps the values of ctx (logger included) but is not cancelled with
// it, so background work outlives the request or command that started it.
func Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) {
	newCtx := context.WithoutCancel(ctx)
	logger := ctxlog.From(newCtx).With("task", name)
	newCtx = ctxlog.With(newCtx, logger)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic in async handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			logger.Error("Error in async handler", "error", err)
		}
	}()
}
