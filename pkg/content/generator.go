package content

import (
	"context"
)

// Generator produces a Record for a customer name. Implementations must be
// safe for concurrent use and hold no per-request state.
type Generator interface {
	Generate(ctx context.Context, customer string) (*Record, error)
}
