package cmd

import (
	"github.com/songbird-data/fixturectl/internal/app"
	"github.com/songbird-data/fixturectl/internal/config"
	"github.com/songbird-data/fixturectl/internal/fetch"
	"github.com/songbird-data/fixturectl/internal/generator"
)

// layout returns the configured layout.
// This is a helper to reduce repetition in commands.
func layout() *config.Layout {
	return app.Default.Layout
}

// getGenerator returns the application's generation provider.
func getGenerator() generator.Provider {
	return app.Default.Generator
}

// getFetcher returns the application's download client.
func getFetcher() *fetch.Client {
	return app.Default.Fetcher
}
