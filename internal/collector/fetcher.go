package collector

import (
	"context"

	"github.com/DiegoTx1/TX-2.0/internal/model"
)

// Fetcher is the data-ingestion collaborator boundary. Implementations
// retrieve a time-ordered batch of closed bars; transport details (REST,
// websocket, replay files) live entirely behind this interface.
type Fetcher interface {
	Fetch(ctx context.Context, symbol, interval string, limit int) ([]model.Candle, error)
	Name() string
}
