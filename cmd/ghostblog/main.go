package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diskusipajak/ghostblog"
	"github.com/diskusipajak/ghostblog/feed"
	"github.com/diskusipajak/ghostblog/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		base := "http://localhost:3000"
		if len(os.Args) > 2 {
			base = os.Args[2]
		}
		if err := runCheck(base); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("ghostblog %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := ghostblog.LoadConfig()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogLevel)
	app := ghostblog.New(cfg, ghostblog.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// SIGHUP clears the content cache, e.g. from a Ghost publish hook.
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

wait:
	for {
		select {
		case err := <-errCh:
			return err
		case <-hup:
			app.Revalidate()
		case <-ctx.Done():
			break wait
		}
	}

	log.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-errCh
}

// runCheck walks a running site's /api/posts feed to the end, the same way
// the "Show more posts" button does, and prints what it saw.
func runCheck(base string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fetcher := feed.NewHTTPFetcher(base, &http.Client{Timeout: 10 * time.Second})
	first, err := fetcher.FetchPage(ctx, 1, feed.PageSize)
	if err != nil {
		return fmt.Errorf("first page: %w", err)
	}
	page, pages := 1, 1
	if first.Pagination != nil {
		page, pages = first.Pagination.Page, first.Pagination.Pages
	}

	f := feed.New(first.Posts, page, pages, fetcher)
	for f.HasMore() {
		if _, err := f.LoadMore(ctx); err != nil {
			return err
		}
	}

	fmt.Printf("%s: %d posts across %d pages\n", base, f.Len(), f.TotalPages())
	for _, p := range f.Posts() {
		fmt.Printf("  %s  %s\n", p.Slug, p.Title)
	}
	return nil
}

func printUsage() {
	fmt.Println(`ghostblog - A Ghost CMS blog front-end built with Go, Echo, and templ

Usage:
  ghostblog <command> [arguments]

Commands:
  serve             Start the web server (configured from the environment);
                    SIGHUP clears the content cache
  check [base-url]  Page through a running site's /api/posts and list posts
  version           Print the ghostblog version
  help              Show this help message

Environment:
  GHOST_CONTENT_API_URL   Ghost site URL, e.g. https://blog.example.com
  GHOST_CONTENT_API_KEY   Content API key
  SITE_URL, SITE_NAME, SITE_DESCRIPTION, SITE_AUTHOR, ADDR
  REVALIDATE_SECONDS, LOG_LEVEL, SITE_CONFIG`)
}
