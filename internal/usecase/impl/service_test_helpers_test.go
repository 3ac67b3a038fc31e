package impl

import (
	"io"
	"log/slog"

	"faranah/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Firebase: &config.FirebaseConfig{
			AdminTopic: "commandes",
		},
	}
}
