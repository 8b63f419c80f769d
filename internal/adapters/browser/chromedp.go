// Package browser drives a headless Chrome instance over the DevTools protocol.
package browser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"

	"cpgate/internal/domain"
)

// textProbeTimeout bounds how long Text waits for a visible element.
const textProbeTimeout = 500 * time.Millisecond

// Launcher starts Chrome instances through chromedp.
type Launcher struct {
	logger *slog.Logger
}

// NewLauncher creates a new launcher.
func NewLauncher(logger *slog.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch starts a browser with a single tab. The browser lives until Close
// is called on the returned engine, independent of ctx.
func (l *Launcher) Launch(ctx context.Context, opts domain.BrowserOptions) (domain.BrowserEngine, error) {
	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", opts.Headless),
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("ignore-certificate-errors", opts.IgnoreCertErrors),
	)
	if opts.WindowWidth > 0 && opts.WindowHeight > 0 {
		allocOpts = append(allocOpts, chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight))
	}
	if opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			l.logger.Debug("chromedp: " + fmt.Sprintf(format, args...))
		}),
	)

	engine := &Engine{
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		allocCancel: allocCancel,
		logger:      l.logger,
	}

	// The first Run starts the browser process and binds its lifetime to
	// tabCtx, so it must not run on a context that ends when Launch returns.
	// ctx only bounds the startup.
	abort := context.AfterFunc(ctx, func() { _ = engine.Close() })
	err := chromedp.Run(tabCtx)
	if !abort() {
		return nil, fmt.Errorf("failed to start browser: %w", ctx.Err())
	}
	if err != nil {
		_ = engine.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	l.logger.DebugContext(ctx, "Browser started", "headless", opts.Headless)
	return engine, nil
}

// Engine is a chromedp-backed BrowserEngine.
type Engine struct {
	tabCtx      context.Context //nolint:containedctx // chromedp keys the browser off this context
	tabCancel   context.CancelFunc
	allocCancel context.CancelFunc
	logger      *slog.Logger
}

// run executes actions on the tab, aborting when ctx is done. Cancelling the
// derived context only aborts the actions; the tab stays open.
func (e *Engine) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(e.tabCtx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

// Navigate loads url and waits for the load event.
func (e *Engine) Navigate(ctx context.Context, url string) error {
	return e.run(ctx, chromedp.Navigate(url))
}

// Location returns the current URL.
func (e *Engine) Location(ctx context.Context) (string, error) {
	var location string
	err := e.run(ctx, chromedp.Location(&location))
	return location, err
}

// Title returns the document title.
func (e *Engine) Title(ctx context.Context) (string, error) {
	var title string
	err := e.run(ctx, chromedp.Title(&title))
	return title, err
}

// Exists reports whether at least one element matches sel, without waiting.
func (e *Engine) Exists(ctx context.Context, sel domain.Selector) (bool, error) {
	query, by := resolveAll(sel)

	var nodes []*cdp.Node
	if err := e.run(ctx, chromedp.Nodes(query, &nodes, by, chromedp.AtLeast(0))); err != nil {
		return false, err
	}
	return len(nodes) > 0, nil
}

// SendKeys types text into the first element matching sel.
func (e *Engine) SendKeys(ctx context.Context, sel domain.Selector, text string) error {
	query, by := resolve(sel)
	return e.run(ctx, chromedp.SendKeys(query, text, by))
}

// Click clicks the first element matching sel.
func (e *Engine) Click(ctx context.Context, sel domain.Selector) error {
	query, by := resolve(sel)
	return e.run(ctx, chromedp.Click(query, by))
}

// Text returns the visible text of the first element matching sel, or an
// empty string when there is no such visible element.
func (e *Engine) Text(ctx context.Context, sel domain.Selector) (string, error) {
	present, err := e.Exists(ctx, sel)
	if err != nil || !present {
		return "", err
	}

	probeCtx, cancel := context.WithTimeout(ctx, textProbeTimeout)
	defer cancel()

	query, by := resolve(sel)
	var text string
	err = e.run(probeCtx, chromedp.Text(query, &text, by, chromedp.NodeVisible))
	if errors.Is(err, context.DeadlineExceeded) {
		return "", nil
	}
	return text, err
}

// Markup returns the outer HTML of the document.
func (e *Engine) Markup(ctx context.Context) (string, error) {
	var html string
	err := e.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery))
	return html, err
}

// Close shuts the browser down.
func (e *Engine) Close() error {
	err := chromedp.Cancel(e.tabCtx)
	e.tabCancel()
	e.allocCancel()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// resolve maps a selector onto a single-node chromedp query.
func resolve(sel domain.Selector) (string, chromedp.QueryOption) {
	switch sel.Kind {
	case domain.ByID:
		return attributeQuery("id", sel.Value), chromedp.ByQuery
	case domain.ByName:
		return attributeQuery("name", sel.Value), chromedp.ByQuery
	case domain.ByXPath:
		return sel.Value, chromedp.BySearch
	default:
		return sel.Value, chromedp.ByQuery
	}
}

// resolveAll maps a selector onto a multi-node chromedp query.
func resolveAll(sel domain.Selector) (string, chromedp.QueryOption) {
	switch sel.Kind {
	case domain.ByID:
		return attributeQuery("id", sel.Value), chromedp.ByQueryAll
	case domain.ByName:
		return attributeQuery("name", sel.Value), chromedp.ByQueryAll
	case domain.ByXPath:
		return sel.Value, chromedp.BySearch
	default:
		return sel.Value, chromedp.ByQueryAll
	}
}

func attributeQuery(attr, value string) string {
	return "[" + attr + "=" + strconv.Quote(value) + "]"
}
