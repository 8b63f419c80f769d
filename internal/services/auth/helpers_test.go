package auth_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cpgate/internal/domain"
)

const (
	gatewayURL    = "https://localhost:5000"
	loginPageURL  = gatewayURL + "/sso/Login?forwardTo=22&RL=1&ip2loc=on"
	portalPageURL = gatewayURL + "/sso/Dispatcher"
)

// fakeEngine is a scripted login page. Elements are keyed by selector string.
type fakeEngine struct {
	mu        sync.Mutex
	location  string
	present   map[string]bool
	broken    map[string]bool
	texts     map[string]string
	keys      map[string]string
	lookups   []string
	clicks    []string
	navigated []string
	markup    string
	closed    int

	// onSubmit runs when the submit button is clicked.
	onSubmit func(e *fakeEngine)
}

func newLoginPage() *fakeEngine {
	return &fakeEngine{
		present: map[string]bool{
			"id=user_name":  true,
			"id=password":   true,
			"id=submitForm": true,
		},
		broken: map[string]bool{},
		texts:  map[string]string{},
		keys:   map[string]string{},
		markup: "<html><body><form id=\"loginform\"></form></body></html>",
	}
}

// approveAfter redirects to the portal d after submit.
func approveAfter(d time.Duration) func(e *fakeEngine) {
	return func(e *fakeEngine) {
		time.AfterFunc(d, func() { e.setLocation(portalPageURL) })
	}
}

func (e *fakeEngine) setLocation(loc string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.location = loc
}

func (e *fakeEngine) setText(sel, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.texts[sel] = text
}

func (e *fakeEngine) Navigate(_ context.Context, url string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.navigated = append(e.navigated, url)
	if strings.TrimSuffix(url, "/") == gatewayURL {
		e.location = loginPageURL
	} else {
		e.location = url
	}
	return nil
}

func (e *fakeEngine) Location(context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed > 0 {
		return "", errors.New("browser closed")
	}
	return e.location, nil
}

func (e *fakeEngine) Title(context.Context) (string, error) {
	return "Client Portal Login", nil
}

func (e *fakeEngine) Exists(_ context.Context, sel domain.Selector) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lookups = append(e.lookups, sel.String())
	if e.broken[sel.String()] {
		return false, errors.New("invalid selector")
	}
	return e.present[sel.String()], nil
}

func (e *fakeEngine) SendKeys(_ context.Context, sel domain.Selector, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.keys[sel.String()] += text
	return nil
}

func (e *fakeEngine) Click(_ context.Context, sel domain.Selector) error {
	e.mu.Lock()
	e.clicks = append(e.clicks, sel.String())
	onSubmit := e.onSubmit
	e.mu.Unlock()

	if onSubmit != nil {
		onSubmit(e)
	}
	return nil
}

func (e *fakeEngine) Text(_ context.Context, sel domain.Selector) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.texts[sel.String()], nil
}

func (e *fakeEngine) Markup(context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.markup, nil
}

func (e *fakeEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed++
	return nil
}

func (e *fakeEngine) closeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

func (e *fakeEngine) typed(sel string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.keys[sel]
}

func (e *fakeEngine) lookupLog() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.lookups...)
}

// fakeLauncher hands out prepared engines in order.
type fakeLauncher struct {
	mu      sync.Mutex
	engines []*fakeEngine
	opts    []domain.BrowserOptions
	err     error
}

func (l *fakeLauncher) Launch(_ context.Context, opts domain.BrowserOptions) (domain.BrowserEngine, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts = append(l.opts, opts)
	if l.err != nil {
		return nil, l.err
	}
	if len(l.engines) == 0 {
		return nil, errors.New("no browser available")
	}
	e := l.engines[0]
	l.engines = l.engines[1:]
	return e, nil
}

func (l *fakeLauncher) launches() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.opts)
}
