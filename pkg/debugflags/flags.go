// Package debugflags holds one debug switch per subsystem. Each switch is a
// constant so that `if debugflags.WebView { ... }` blocks compile away when
// the switch is off. The name of each switch matches the subsystem that
// consults it.
package debugflags

const (
	BrowserFrame       = true
	CacheManager       = true
	CallbackProxy      = true
	CookieManager      = true
	CookieSyncManager  = true
	FrameLoader        = true
	JWebCoreJavaBridge = true // highly verbose
	LoadListener       = true
	Network            = true
	SSLErrorHandler    = true
	StreamLoader       = true
	URLUtil            = true
	WebBackForwardList = true
	WebSettings        = true
	WebSyncManager     = true
	WebView            = true
	WebViewCore        = true
	MeasurePageSwapFPS = true
	BitmapHelper       = true
)

// Canonical subsystem names used for lookups by name.
const (
	NameBrowserFrame       = "BROWSER_FRAME"
	NameCacheManager       = "CACHE_MANAGER"
	NameCallbackProxy      = "CALLBACK_PROXY"
	NameCookieManager      = "COOKIE_MANAGER"
	NameCookieSyncManager  = "COOKIE_SYNC_MANAGER"
	NameFrameLoader        = "FRAME_LOADER"
	NameJWebCoreJavaBridge = "J_WEB_CORE_JAVA_BRIDGE"
	NameLoadListener       = "LOAD_LISTENER"
	NameNetwork            = "NETWORK"
	NameSSLErrorHandler    = "SSL_ERROR_HANDLER"
	NameStreamLoader       = "STREAM_LOADER"
	NameURLUtil            = "URL_UTIL"
	NameWebBackForwardList = "WEB_BACK_FORWARD_LIST"
	NameWebSettings        = "WEB_SETTINGS"
	NameWebSyncManager     = "WEB_SYNC_MANAGER"
	NameWebView            = "WEB_VIEW"
	NameWebViewCore        = "WEB_VIEW_CORE"
	NameMeasurePageSwapFPS = "MEASURE_PAGE_SWAP_FPS"
	NameBitmapHelper       = "BITMAP_HELPER"
)
