package domain

import "context"

// SelectorKind tells the browser engine how to interpret a selector value.
type SelectorKind int

const (
	ByID SelectorKind = iota
	ByName
	ByCSS
	ByXPath
)

func (k SelectorKind) String() string {
	switch k {
	case ByID:
		return "id"
	case ByName:
		return "name"
	case ByCSS:
		return "css"
	case ByXPath:
		return "xpath"
	default:
		return "unknown"
	}
}

// Selector addresses a page element.
type Selector struct {
	Kind  SelectorKind
	Value string
}

func (s Selector) String() string {
	return s.Kind.String() + "=" + s.Value
}

// BrowserOptions configures a browser launch.
type BrowserOptions struct {
	Headless         bool
	IgnoreCertErrors bool
	WindowWidth      int
	WindowHeight     int
	ExecPath         string
}

// BrowserLauncher starts browser engines.
type BrowserLauncher interface {
	Launch(ctx context.Context, opts BrowserOptions) (BrowserEngine, error)
}

// BrowserEngine drives a single browser page.
//
// Exists never waits for an element to appear. Text returns an empty string
// when the element is absent or not visible.
type BrowserEngine interface {
	Navigate(ctx context.Context, url string) error
	Location(ctx context.Context) (string, error)
	Title(ctx context.Context) (string, error)
	Exists(ctx context.Context, sel Selector) (bool, error)
	SendKeys(ctx context.Context, sel Selector, text string) error
	Click(ctx context.Context, sel Selector) error
	Text(ctx context.Context, sel Selector) (string, error)
	Markup(ctx context.Context) (string, error)
	Close() error
}
