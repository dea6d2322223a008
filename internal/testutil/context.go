package testutil

import (
	"context"

	"github.com/cartology/tripquote/internal/types"
)

// SetupContext returns a context primed the way the request middleware would
// prime it.
func SetupContext() context.Context {
	return context.WithValue(context.Background(), types.CtxRequestID, types.GenerateUUID())
}
