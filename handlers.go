package ghostblog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/diskusipajak/ghostblog/feed"
	"github.com/diskusipajak/ghostblog/ghost"
	"github.com/diskusipajak/ghostblog/logger"
	"github.com/diskusipajak/ghostblog/navbar"
	"github.com/diskusipajak/ghostblog/views"
)

// PostState is the outcome of resolving a detail page slug.
type PostState int

const (
	PostNotConfigured PostState = iota
	PostNotFound
	PostFound
)

const (
	notConfiguredTitle       = "Ghost CMS Blog"
	notConfiguredDescription = "Configure Ghost credentials to enable blog content."
	notFoundTitle            = "Post not found"
)

func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	meta := views.PageMeta{
		Title:       a.Config.Name,
		Description: a.Config.Description,
		URL:         BuildURL(a.Config.URL),
		JSONLD:      WebsiteJsonLD(a.Config),
	}
	if !a.Content.Configured() {
		return a.renderPage(c, http.StatusOK, meta, views.NotConfigured())
	}

	cursor := views.FeedCursor{Page: 1, Pages: 1}
	page, err := a.Content.Posts(ctx, 1, feed.PageSize)
	if err != nil {
		logger.ErrorWithFields(a.Log, "list posts failed", logger.Fields{"page": 1, "error": err.Error()})
		c.Response().Header().Set("Cache-Control", "no-store")
		return a.renderPage(c, http.StatusOK, meta, views.Index(a.site(), nil, cursor))
	}
	if page.Pagination != nil {
		cursor.Page = page.Pagination.Page
		cursor.Pages = page.Pagination.Pages
	}
	return a.renderPage(c, http.StatusOK, meta, views.Index(a.site(), page.Posts, cursor))
}

// handlePost resolves the page metadata and the body independently and
// concurrently; both read through the same cache.
func (a *App) handlePost(c echo.Context) error {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		return c.Redirect(http.StatusMovedPermanently, "/")
	}
	ctx := c.Request().Context()

	var (
		meta  views.PageMeta
		state PostState
		post  ghost.Post
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		meta = a.postMetadata(gctx, slug)
		return nil
	})
	g.Go(func() error {
		state, post = a.resolvePost(gctx, slug)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	switch state {
	case PostNotConfigured:
		return a.renderPage(c, http.StatusOK, meta, views.NotConfigured())
	case PostNotFound:
		return a.renderPage(c, http.StatusNotFound, meta, views.PostNotFound())
	default:
		return a.renderPage(c, http.StatusOK, meta, views.PostArticle(post))
	}
}

// resolvePost maps the content lookup for slug onto a PostState. Any
// lookup error counts as not found.
func (a *App) resolvePost(ctx context.Context, slug string) (PostState, ghost.Post) {
	if !a.Content.Configured() {
		return PostNotConfigured, ghost.Post{}
	}
	post, err := a.Content.PostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ghost.ErrNotConfigured) {
			return PostNotConfigured, ghost.Post{}
		}
		if !errors.Is(err, ghost.ErrNotFound) {
			logger.ErrorWithFields(a.Log, "get post failed", logger.Fields{"slug": slug, "error": err.Error()})
		}
		return PostNotFound, ghost.Post{}
	}
	if post.Slug == "" {
		return PostNotFound, ghost.Post{}
	}
	return PostFound, post
}

// postMetadata builds the head metadata for a detail page.
func (a *App) postMetadata(ctx context.Context, slug string) views.PageMeta {
	state, post := a.resolvePost(ctx, slug)
	switch state {
	case PostNotConfigured:
		return views.PageMeta{Title: notConfiguredTitle, Description: notConfiguredDescription}
	case PostNotFound:
		return views.PageMeta{Title: notFoundTitle}
	}
	return views.PageMeta{
		Title:       firstNonEmpty(post.MetaTitle, post.Title),
		Description: firstNonEmpty(post.MetaDescription, post.Excerpt),
		URL:         PostURL(a.Config.URL, post.Slug),
		OGType:      "article",
		Image:       post.FeatureImage,
		JSONLD:      BlogPostingJsonLD(post, a.Config),
	}
}

var emptyPostsPage = ghost.PostsPage{Posts: []ghost.PostSummary{}}

func (a *App) handlePostsAPI(c echo.Context) error {
	if !a.Content.Configured() {
		c.Response().Header().Set("Cache-Control", "no-store")
		return c.JSON(http.StatusServiceUnavailable, emptyPostsPage)
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", feed.PageSize)

	resp, err := a.Content.Posts(c.Request().Context(), page, limit)
	if err != nil {
		logger.ErrorWithFields(a.Log, "list posts failed", logger.Fields{"page": page, "limit": limit, "error": err.Error()})
		c.Response().Header().Set("Cache-Control", "no-store")
		return c.JSON(http.StatusBadGateway, emptyPostsPage)
	}
	if resp.Posts == nil {
		resp.Posts = []ghost.PostSummary{}
	}
	return c.JSON(http.StatusOK, resp)
}

// handleFeedMore serves the next page of the index feed as an HTML
// fragment. The cursor travels in the query string.
func (a *App) handleFeedMore(c echo.Context) error {
	page := queryInt(c, "page", 0)
	pages := queryInt(c, "pages", 0)
	if page < 1 || pages < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "page and pages are required")
	}

	f := feed.New(nil, page, pages, feed.FetcherFunc(a.Content.Posts))
	added, err := f.LoadMore(c.Request().Context())
	cursor := views.FeedCursor{Page: f.Page(), Pages: f.TotalPages(), Error: f.ErrorMessage()}

	switch {
	case errors.Is(err, feed.ErrNoMore):
		return Render(c, views.FeedChunk(nil, cursor))
	case err != nil:
		logger.ErrorWithFields(a.Log, "load more failed", logger.Fields{"page": page + 1, "error": err.Error()})
		c.Response().Header().Set("Cache-Control", "no-store")
		return RenderStatus(c, http.StatusBadGateway, views.FeedChunk(nil, cursor))
	}
	return Render(c, views.FeedChunk(added, cursor))
}

func (a *App) handleSitemap(c echo.Context) error {
	var posts []ghost.PostSummary
	if a.Content.Configured() {
		for page := 1; page <= sitemapMaxPages; page++ {
			resp, err := a.Content.Posts(c.Request().Context(), page, sitemapPageSize)
			if err != nil {
				return fmt.Errorf("sitemap page %d: %w", page, err)
			}
			posts = append(posts, resp.Posts...)
			if resp.Pagination == nil || resp.Pagination.Page >= resp.Pagination.Pages || len(resp.Posts) == 0 {
				break
			}
		}
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	var posts []ghost.PostSummary
	if a.Content.Configured() {
		resp, err := a.Content.Posts(c.Request().Context(), 1, rssItemLimit)
		if err != nil {
			return fmt.Errorf("rss: %w", err)
		}
		posts = resp.Posts
	}
	return a.renderRSS(c, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func (a *App) handleRobots(c echo.Context) error {
	body := "User-agent: *\nAllow: /\n\nSitemap: " + a.Config.URL + "/sitemap.xml\n"
	return c.String(http.StatusOK, body)
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":           "ok",
		"ghost_configured": a.Content.Configured(),
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderPage(c, http.StatusNotFound, views.PageMeta{Title: "Page not found"}, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		logger.ErrorWithFields(a.Log, "server error", logger.Fields{
			"uri":   c.Request().RequestURI,
			"error": err.Error(),
		})
		c.Response().Header().Set("Cache-Control", "no-store")
		_ = a.renderPage(c, code, views.PageMeta{Title: "Something went wrong"}, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// navState builds the navigation bar state for the current request. The
// no-JS menu fallback opens the overlay with ?menu=open.
func (a *App) navState(c echo.Context) views.Nav {
	req := c.Request()

	var body navbar.BodyStyle
	menu := navbar.NewMenu(&body)
	if c.QueryParam("menu") == "open" {
		menu.Show()
	}

	dpr := req.Header.Get("Sec-CH-DPR")
	if dpr == "" {
		dpr = req.Header.Get("DPR")
	}

	return views.Nav{
		Config:     a.Config.Nav,
		Path:       req.URL.Path,
		MenuOpen:   menu.IsOpen(),
		PixelRatio: navbar.PixelRatio(navbar.ParseDPR(dpr)),
		BodyStyle:  body.CSS(),
	}
}

func queryInt(c echo.Context, name string, fallback int) int {
	v := c.QueryParam(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
