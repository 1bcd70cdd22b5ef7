// Package app wires the topics UI: router, renderer, app shell and pages.
package app

import (
	"github.com/vcrobe/topics-ui/components/navbar"
	"github.com/vcrobe/topics-ui/internal/app/components/layouts"
	"github.com/vcrobe/topics-ui/internal/app/topics"
	"github.com/vcrobe/topics-ui/router"
	"github.com/vcrobe/topics-ui/runtime"
)

// App holds the long-lived pieces of the running UI.
type App struct {
	Engine   *router.Engine
	Renderer *runtime.RendererImpl
	Shell    *router.AppShell
	Layout   *layouts.MainLayout
}

// Option customizes New.
type Option func(*options)

type options struct {
	catalog *topics.Catalog
	onError func(error)
}

// WithCatalog replaces the default topic catalog.
func WithCatalog(c *topics.Catalog) Option {
	return func(o *options) { o.catalog = c }
}

// WithErrorHandler sets where navigation bar errors are presented.
func WithErrorHandler(fn func(error)) Option {
	return func(o *options) { o.onError = fn }
}

// New builds the app on top of history, drawing onto surface.
func New(history router.History, surface runtime.Surface, opts ...Option) *App {
	o := options{catalog: topics.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	// The engine is both the renderer's navigation manager and the
	// navigation bar's capability.
	routerEngine := router.NewEngine(history)
	renderer := runtime.NewRendererWithSurface(routerEngine, surface)
	routerEngine.SetRenderer(renderer)

	bar := navbar.NewNavigationBar(routerEngine)
	bar.OnError = o.onError
	bar.Active = routerEngine.PathSignal()

	mainLayout := &layouts.MainLayout{NavBar: bar}
	registerRoutes(routerEngine, mainLayout, o.catalog)

	return &App{
		Engine:   routerEngine,
		Renderer: renderer,
		Shell:    router.NewAppShell(mainLayout),
		Layout:   mainLayout,
	}
}

// Start renders the shell and hands control to the router.
func (a *App) Start() error {
	a.Renderer.SetCurrentComponent(a.Shell, "app-shell")
	a.Renderer.ReRender()
	return a.Engine.Start(a.Shell.SetPage)
}

// Stop detaches the router from the history.
func (a *App) Stop() {
	a.Engine.Stop()
}
