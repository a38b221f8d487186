package debugflags

import (
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

type flag struct {
	name    string
	enabled bool
}

// flags is the single source for the lookup table; it is never modified.
var flags = []flag{
	{NameBrowserFrame, BrowserFrame},
	{NameCacheManager, CacheManager},
	{NameCallbackProxy, CallbackProxy},
	{NameCookieManager, CookieManager},
	{NameCookieSyncManager, CookieSyncManager},
	{NameFrameLoader, FrameLoader},
	{NameJWebCoreJavaBridge, JWebCoreJavaBridge},
	{NameLoadListener, LoadListener},
	{NameNetwork, Network},
	{NameSSLErrorHandler, SSLErrorHandler},
	{NameStreamLoader, StreamLoader},
	{NameURLUtil, URLUtil},
	{NameWebBackForwardList, WebBackForwardList},
	{NameWebSettings, WebSettings},
	{NameWebSyncManager, WebSyncManager},
	{NameWebView, WebView},
	{NameWebViewCore, WebViewCore},
	{NameMeasurePageSwapFPS, MeasurePageSwapFPS},
	{NameBitmapHelper, BitmapHelper},
}

var table = buildTable()

func buildTable() map[string]bool {
	t := make(map[string]bool, len(flags))
	for _, f := range flags {
		if _, dup := t[f.name]; dup {
			panic("debugflags: duplicate subsystem " + f.name)
		}
		t[f.name] = f.enabled
	}
	return t
}

func normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Lookup returns the switch for a subsystem; ok is false for unknown names.
func Lookup(name string) (enabled, ok bool) {
	enabled, ok = table[normalize(name)]
	return enabled, ok
}

// Enabled reports whether the subsystem's switch is on. Unknown subsystems
// are off.
func Enabled(name string) bool {
	return table[normalize(name)]
}

// Names returns every subsystem name in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns a copy of the table.
func All() map[string]bool {
	out := make(map[string]bool, len(table))
	for name, enabled := range table {
		out[name] = enabled
	}
	return out
}

// Logger returns parent named after the subsystem when its switch is on,
// and a logger that discards everything when it is off.
func Logger(parent hclog.Logger, name string) hclog.Logger {
	if parent == nil || !Enabled(name) {
		return hclog.NewNullLogger()
	}
	return parent.Named(strings.ToLower(normalize(name)))
}
