// Package app provides the application context for fixturectl.
// It allows dependency injection for testing.
package app

import (
	"github.com/songbird-data/fixturectl/internal/config"
	"github.com/songbird-data/fixturectl/internal/fetch"
	"github.com/songbird-data/fixturectl/internal/generator"
)

// App holds the application dependencies
type App struct {
	// Layout holds the configured paths and remote source
	Layout *config.Layout

	// Generator produces the fixture tree
	Generator generator.Provider

	// Fetcher downloads the pre-built archive
	Fetcher *fetch.Client
}

// Option is a function that configures the App
type Option func(*App)

// WithLayout sets a custom layout
func WithLayout(layout *config.Layout) Option {
	return func(a *App) {
		a.Layout = layout
	}
}

// WithGenerator sets a custom generation provider
func WithGenerator(g generator.Provider) Option {
	return func(a *App) {
		a.Generator = g
	}
}

// WithFetcher sets a custom download client
func WithFetcher(c *fetch.Client) Option {
	return func(a *App) {
		a.Fetcher = c
	}
}

// New creates a new App with the given options.
// The generator defaults to a script provider built from the layout, and
// the fetcher to a client with the default retry policy and no timeout.
func New(opts ...Option) *App {
	app := &App{
		Layout: config.DefaultLayout(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Generator == nil {
		app.Generator = generator.NewScript(app.Layout.Generator)
	}
	if app.Fetcher == nil {
		app.Fetcher = fetch.NewClient(0)
	}

	return app
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
