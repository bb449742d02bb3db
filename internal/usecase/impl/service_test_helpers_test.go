package impl

import (
	"io"
	"log/slog"

	"cookify/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Ordering: &config.OrderingConfig{
			MaxItemsPerOrder:    20,
			MaxQuantityPerItem:  10,
			MaxAddressesPerUser: 5,
		},
	}
}
