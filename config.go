package ghostblog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/diskusipajak/ghostblog/ghost"
	"github.com/diskusipajak/ghostblog/logger"
	"github.com/diskusipajak/ghostblog/navbar"
)

// SiteConfig holds all configuration for a ghostblog site.
type SiteConfig struct {
	Name        string // Site name (default "Ghost CMS Blog")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Author name for JSON-LD

	Addr string // Listen address (default ":3000")

	Ghost      ghost.Config
	Revalidate time.Duration // Content cache TTL (default 60s)

	Nav navbar.Config

	APIRateLimit int // /api/posts requests per IP per minute (default 120)
	LogLevel     string
}

// siteFile is the optional YAML overlay named by SITE_CONFIG.
type siteFile struct {
	Name        string        `yaml:"name"`
	URL         string        `yaml:"url"`
	Description string        `yaml:"description"`
	Author      string        `yaml:"author"`
	Nav         navbar.Config `yaml:"nav"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Ghost CMS Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimRight(c.URL, "/")
	if c.Description == "" {
		c.Description = "Latest stories sourced directly from Ghost CMS."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.Revalidate <= 0 {
		c.Revalidate = 60 * time.Second
	}
	if c.APIRateLimit <= 0 {
		c.APIRateLimit = 120
	}
	c.Nav = c.Nav.WithDefaults()
}

// LoadConfig reads .env (if present), the environment and the optional
// SITE_CONFIG YAML file. Environment values win over the file.
func LoadConfig() (SiteConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return SiteConfig{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg SiteConfig
	if path := os.Getenv("SITE_CONFIG"); path != "" {
		file, err := readSiteFile(path)
		if err != nil {
			return SiteConfig{}, err
		}
		cfg.Name = file.Name
		cfg.URL = file.URL
		cfg.Description = file.Description
		cfg.Author = file.Author
		cfg.Nav = file.Nav
	}

	cfg.Name = EnvOr("SITE_NAME", cfg.Name)
	cfg.URL = EnvOr("SITE_URL", cfg.URL)
	cfg.Description = EnvOr("SITE_DESCRIPTION", cfg.Description)
	cfg.Author = EnvOr("SITE_AUTHOR", cfg.Author)
	cfg.Addr = EnvOr("ADDR", "")
	cfg.LogLevel = EnvOr("LOG_LEVEL", "info")
	cfg.Ghost = ghost.ConfigFromEnv()

	if v := os.Getenv("REVALIDATE_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return SiteConfig{}, fmt.Errorf("REVALIDATE_SECONDS: invalid value %q", v)
		}
		cfg.Revalidate = time.Duration(n) * time.Second
	}

	cfg.setDefaults()
	return cfg, nil
}

func readSiteFile(path string) (siteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return siteFile{}, fmt.Errorf("read site config: %w", err)
	}
	var file siteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return siteFile{}, fmt.Errorf("parse site config %s: %w", path, err)
	}
	return file, nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithContentSource replaces the Ghost client built from the config.
// The source is still wrapped in the revalidation cache.
func WithContentSource(src ContentSource) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithLogger replaces the logger built from LOG_LEVEL.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}
