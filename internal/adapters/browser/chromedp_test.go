package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cpgate/internal/domain"
	"cpgate/internal/testutil"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		sel   domain.Selector
		query string
		all   string
	}{
		{"id", domain.Selector{Kind: domain.ByID, Value: "user_name"}, `[id="user_name"]`, `[id="user_name"]`},
		{"name", domain.Selector{Kind: domain.ByName, Value: "password"}, `[name="password"]`, `[name="password"]`},
		{"css", domain.Selector{Kind: domain.ByCSS, Value: "input[type=password]"}, "input[type=password]", "input[type=password]"},
		{"xpath", domain.Selector{Kind: domain.ByXPath, Value: "//button"}, "//button", "//button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := resolve(tt.sel)
			assert.Equal(t, tt.query, query)

			all, _ := resolveAll(tt.sel)
			assert.Equal(t, tt.all, all)
		})
	}
}

func TestAttributeQuery_Escapes(t *testing.T) {
	assert.Equal(t, `[id="a\"b"]`, attributeQuery("id", `a"b`))
}

const loginPage = `<!DOCTYPE html>
<html><head><title>Client Portal Login</title></head>
<body>
<form action="/done" method="get">
  <input type="text" id="user_name" name="username">
  <input type="password" id="password" name="password">
  <div class="error" style="display:none">Invalid username password combination</div>
  <button type="submit" id="submitForm">Login</button>
</form>
</body></html>`

func findChrome(t *testing.T) string {
	t.Helper()
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	t.Skip("no Chrome binary available")
	return ""
}

func launchHeadless(t *testing.T, ctx context.Context, chrome string) domain.BrowserEngine {
	t.Helper()
	engine, err := NewLauncher(testutil.Logger()).Launch(ctx, domain.BrowserOptions{
		Headless:         true,
		IgnoreCertErrors: true,
		WindowWidth:      1920,
		WindowHeight:     1080,
		ExecPath:         chrome,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = engine.Close() })
	return engine
}

func TestLauncher_BrowserOutlivesLaunchContext(t *testing.T) {
	chrome := findChrome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(loginPage))
	}))
	defer server.Close()

	launchCtx, cancelLaunch := context.WithTimeout(context.Background(), 60*time.Second)
	engine := launchHeadless(t, launchCtx, chrome)
	cancelLaunch()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, engine.Navigate(ctx, server.URL+"/sso/Login"))

	title, err := engine.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Client Portal Login", title)
}

func TestLauncher_CancelledContextFailsLaunch(t *testing.T) {
	chrome := findChrome(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLauncher(testutil.Logger()).Launch(ctx, domain.BrowserOptions{Headless: true, ExecPath: chrome})
	require.Error(t, err)
}

func TestEngine_LoginFormRoundTrip(t *testing.T) {
	chrome := findChrome(t)

	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if r.URL.Path == "/done" {
			_, _ = w.Write([]byte(`<html><head><title>Done</title></head><body>ok</body></html>`))
			return
		}
		_, _ = w.Write([]byte(loginPage))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	launchCtx, cancelLaunch := context.WithTimeout(ctx, 30*time.Second)
	engine := launchHeadless(t, launchCtx, chrome)
	cancelLaunch()

	require.NoError(t, engine.Navigate(ctx, server.URL+"/sso/Login"))

	title, err := engine.Title(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Client Portal Login", title)

	found, err := engine.Exists(ctx, domain.Selector{Kind: domain.ByID, Value: "user_name"})
	require.NoError(t, err)
	assert.True(t, found)

	found, err = engine.Exists(ctx, domain.Selector{Kind: domain.ByID, Value: "username"})
	require.NoError(t, err)
	assert.False(t, found)

	found, err = engine.Exists(ctx, domain.Selector{Kind: domain.ByXPath, Value: "//button[contains(text(),'Log')]"})
	require.NoError(t, err)
	assert.True(t, found)

	text, err := engine.Text(ctx, domain.Selector{Kind: domain.ByCSS, Value: ".error"})
	require.NoError(t, err)
	assert.Empty(t, text, "hidden error element has no visible text")

	require.NoError(t, engine.SendKeys(ctx, domain.Selector{Kind: domain.ByID, Value: "user_name"}, "trader"))
	require.NoError(t, engine.SendKeys(ctx, domain.Selector{Kind: domain.ByName, Value: "password"}, "secret"))
	require.NoError(t, engine.Click(ctx, domain.Selector{Kind: domain.ByID, Value: "submitForm"}))

	require.Eventually(t, func() bool {
		location, locErr := engine.Location(ctx)
		return locErr == nil && strings.HasSuffix(location, "/done?username=trader&password=secret")
	}, 10*time.Second, 100*time.Millisecond)

	markup, err := engine.Markup(ctx)
	require.NoError(t, err)
	assert.Contains(t, markup, "ok")
}
