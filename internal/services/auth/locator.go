package auth

import (
	"context"
	"fmt"
	"time"

	"cpgate/internal/domain"
	"cpgate/internal/errors"
)

// Strategy is one named way of finding a login form element.
type Strategy struct {
	Name     string
	Selector domain.Selector
}

// FieldLocator finds a form element by trying its strategies in order.
// The first strategy that matches wins and later ones are never tried.
type FieldLocator struct {
	field      string
	strategies []Strategy
}

// NewFieldLocator creates a locator for the named field.
func NewFieldLocator(field string, strategies ...Strategy) *FieldLocator {
	return &FieldLocator{
		field:      field,
		strategies: strategies,
	}
}

// Field returns the name of the field being located.
func (l *FieldLocator) Field() string {
	return l.field
}

// Strategies returns the strategies in the order they are tried.
func (l *FieldLocator) Strategies() []Strategy {
	return append([]Strategy(nil), l.strategies...)
}

// Locate makes a single pass over the strategies. A strategy whose lookup
// fails is treated as not matching.
func (l *FieldLocator) Locate(ctx context.Context, engine domain.BrowserEngine) (Strategy, error) {
	var lastErr error
	for _, strategy := range l.strategies {
		found, err := engine.Exists(ctx, strategy.Selector)
		if err != nil {
			lastErr = err
			continue
		}
		if found {
			return strategy, nil
		}
	}

	if lastErr != nil {
		return Strategy{}, fmt.Errorf("%s field: %w (last lookup error: %w)", l.field, errors.ErrLoginElementNotFound, lastErr)
	}
	return Strategy{}, fmt.Errorf("%s field: %w", l.field, errors.ErrLoginElementNotFound)
}

// Await repeats Locate every poll interval until a strategy matches or timeout elapses.
func (l *FieldLocator) Await(
	ctx context.Context,
	engine domain.BrowserEngine,
	timeout, poll time.Duration,
) (Strategy, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		strategy, err := l.Locate(ctx, engine)
		if err == nil {
			return strategy, nil
		}

		select {
		case <-ctx.Done():
			return Strategy{}, fmt.Errorf("%s field: %w", l.field, ctx.Err())
		case <-deadline.C:
			return Strategy{}, err
		case <-time.After(poll):
		}
	}
}

func byID(id string) Strategy {
	return Strategy{Name: "by id " + id, Selector: domain.Selector{Kind: domain.ByID, Value: id}}
}

func byName(name string) Strategy {
	return Strategy{Name: "by name " + name, Selector: domain.Selector{Kind: domain.ByName, Value: name}}
}

func byCSS(css string) Strategy {
	return Strategy{Name: "by css " + css, Selector: domain.Selector{Kind: domain.ByCSS, Value: css}}
}

func byXPath(xpath string) Strategy {
	return Strategy{Name: "by xpath", Selector: domain.Selector{Kind: domain.ByXPath, Value: xpath}}
}

// UsernameLocator returns the locator for the gateway login username input.
func UsernameLocator() *FieldLocator {
	return NewFieldLocator("username",
		byID("user_name"),
		byID("username"),
		byName("username"),
		byCSS("input[type='text']"),
		byCSS("input[name*='user']"),
	)
}

// PasswordLocator returns the locator for the gateway login password input.
func PasswordLocator() *FieldLocator {
	return NewFieldLocator("password",
		byID("password"),
		byName("password"),
		byCSS("input[type='password']"),
	)
}

// SubmitLocator returns the locator for the gateway login button.
func SubmitLocator() *FieldLocator {
	return NewFieldLocator("submit",
		byID("submitForm"),
		byCSS("button[type='submit']"),
		byCSS("input[type='submit']"),
		byXPath("//button[contains(text(), 'Log') or contains(text(), 'log')]"),
	)
}

// errorSelector matches the message the login page shows on rejection.
var errorSelector = domain.Selector{Kind: domain.ByCSS, Value: ".error"} //nolint:gochecknoglobals
