// Package ghostblog serves a blog front-end over the Ghost Content API,
// built with Go, Echo, and templ.
//
// It renders the post index with an incremental "Show more posts" feed,
// post detail pages, a local JSON posts endpoint, RSS, and a sitemap.
// Content is read through a stale-while-revalidate cache; nothing is stored.
package ghostblog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/diskusipajak/ghostblog/ghost"
	"github.com/diskusipajak/ghostblog/logger"
)

// App is the central application. It wires together the content cache,
// handlers, middleware, and views.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content ContentSource
	Log     logger.Logger

	source       ContentSource
	cache        *ContentCache
	metrics      *prometheus.Registry
	apiLimiter   *RateLimiter
	placeholder  []byte
	customRoutes []func(*App)
	staticDir    string
	ready        bool
}

// New creates an App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		staticDir: "public",
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Log == nil {
		a.Log = logger.New(cfg.LogLevel)
	}
	if a.source == nil {
		a.source = ghost.NewClient(cfg.Ghost, nil)
	}
	return a
}

// Setup builds the cache, placeholder image, middleware and routes. Start
// calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	placeholder, err := placeholderJPEG(placeholderWidth, placeholderHeight)
	if err != nil {
		return fmt.Errorf("ghostblog: build placeholder: %w", err)
	}
	a.placeholder = placeholder

	a.cache = NewContentCache(a.source, a.Config.Revalidate, a.Log)
	a.Content = a.cache
	a.metrics = prometheus.NewRegistry()
	a.apiLimiter = NewRateLimiter(a.Config.APIRateLimit, time.Minute)

	if !a.Content.Configured() {
		a.Log.Warnf("ghost content api not configured: set GHOST_CONTENT_API_URL and GHOST_CONTENT_API_KEY")
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until the server is shut down.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Log.Infof("listening on %s", a.Config.Addr)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (a *App) Shutdown(ctx context.Context) error {
	defer a.Close()
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded assets are served under /public/ ahead of the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/site.css", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.GET("/public/placeholder.jpg", a.handlePlaceholder)

	e.Static("/public", a.staticDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", a.handleHealth)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: a.metrics}))

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/blog/more/", a.handleFeedMore, a.apiLimiter.Middleware)
	e.GET("/blog/:slug/", a.handlePost)

	e.GET("/api/posts", a.handlePostsAPI, a.apiLimiter.Middleware)
}

// Revalidate drops every cached post and listing so the next request reads
// from Ghost.
func (a *App) Revalidate() {
	if a.cache == nil {
		return
	}
	a.cache.Invalidate()
	a.Log.Infof("content cache cleared")
}

// Close releases background resources.
func (a *App) Close() error {
	if a.apiLimiter != nil {
		a.apiLimiter.Stop()
	}
	return nil
}
