package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"airbnb-dashboard/config"
	"airbnb-dashboard/utils"
)

// Views are the dashboard pages captured by default.
var Views = []string{"explorer", "insights", "estimator"}

// Capturer renders dashboard pages in a headless browser and saves them as PNGs.
type Capturer struct {
	cfg     *config.Config
	logger  *utils.Logger
	baseURL string
	query   string
	pool    *utils.WorkerPool
	retry   *utils.RetryConfig
}

// New creates a Capturer for the server at baseURL. query is appended to
// every view URL so the captures share one filter selection.
func New(cfg *config.Config, logger *utils.Logger, baseURL, query string) *Capturer {
	return &Capturer{
		cfg:     cfg,
		logger:  logger,
		baseURL: baseURL,
		query:   query,
		pool:    utils.NewWorkerPool(cfg.SnapshotConcurrency, cfg.RateLimitMs),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Capture saves one screenshot per view into the snapshot directory and
// returns the written paths in view order.
func (c *Capturer) Capture(ctx context.Context, views []string) ([]string, error) {
	if err := os.MkdirAll(c.cfg.SnapshotDir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create %s: %w", c.cfg.SnapshotDir, err)
	}

	chromeBin := findChromeBinary(c.cfg.ChromeBin)
	c.logger.Info("[snapshot] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1440, 900),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	// start the browser once so tabs share it
	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("snapshot: start browser: %w", err)
	}

	stamp := time.Now()
	paths := make([]string, len(views))
	for i, view := range views {
		target := ViewURL(c.baseURL, view, c.query)
		path := filepath.Join(c.cfg.SnapshotDir, FileName(view, stamp))
		paths[i] = path

		c.pool.Submit(func() error {
			if err := c.captureOne(browserCtx, target, path); err != nil {
				c.logger.Error("[snapshot] %s failed: %v", view, err)
				return fmt.Errorf("snapshot: %s: %w", view, err)
			}
			c.logger.Info("[snapshot] Saved %s -> %s", target, path)
			return nil
		})
	}

	if err := c.pool.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (c *Capturer) captureOne(browserCtx context.Context, target, path string) error {
	var png []byte

	err := c.retry.Do(browserCtx, "capture "+target, func(context.Context) error {
		tabCtx, cancel := chromedp.NewContext(browserCtx)
		defer cancel()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 60*time.Second)
		defer cancelTimeout()

		return chromedp.Run(tabCtx,
			chromedp.Navigate(target),
			chromedp.WaitVisible("main", chromedp.ByQuery),
			// plotly draws after load
			chromedp.Sleep(2*time.Second),
			chromedp.FullScreenshot(&png, 90),
		)
	})
	if err != nil {
		return err
	}

	return os.WriteFile(path, png, 0o644)
}

// ViewURL joins baseURL, the view path and an optional encoded query.
func ViewURL(baseURL, view, query string) string {
	u := strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(view)
	if query = strings.TrimPrefix(query, "?"); query != "" {
		u += "?" + query
	}
	return u
}

// FileName names the capture of view taken at t.
func FileName(view string, t time.Time) string {
	return fmt.Sprintf("%s_%s.png", view, t.Format("20060102_150405"))
}

// findChromeBinary locates a Chrome/Chromium binary, preferring configured.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
