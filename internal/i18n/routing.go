package i18n

import (
	"net/http"
	"strings"
	"time"
)

// CookieName pins a visitor's locale once they have seen a page in it.
const CookieName = "locale"

// LocalizePath prefixes path with "/<locale>" unless locale is the default.
func (b *Bundle) LocalizePath(locale, path string) string {
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	if locale == b.defaultLocale || !b.IsSupported(locale) {
		return path
	}
	if path == "/" {
		return "/" + locale
	}
	return "/" + locale + path
}

// LocaleFromPath splits a request path into its locale and the unprefixed
// remainder. Paths without a non-default locale prefix belong to the default.
func (b *Bundle) LocaleFromPath(path string) (locale, rest string) {
	seg, tail := splitFirst(path)
	if seg != "" && seg != b.defaultLocale && b.IsSupported(seg) {
		return seg, tail
	}
	return b.defaultLocale, path
}

// StripLocale drops a non-default locale prefix from path.
func (b *Bundle) StripLocale(path string) string {
	_, rest := b.LocaleFromPath(path)
	return rest
}

func splitFirst(path string) (seg, rest string) {
	trimmed := strings.TrimPrefix(path, "/")
	seg, tail, found := strings.Cut(trimmed, "/")
	if !found {
		return seg, "/"
	}
	return seg, "/" + tail
}

// Middleware binds every request in a route group to locale. Pages served to
// the visitor refresh the locale cookie. When detect is set, unprefixed GETs
// from visitors without a cookie are redirected to the locale their browser
// prefers.
func (b *Bundle) Middleware(locale string, nf NumberFormatter, detect bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, rest := b.LocaleFromPath(r.URL.Path)
			if locale == b.defaultLocale {
				rest = r.URL.Path
			}

			cookie, _ := r.Cookie(CookieName)
			isRead := r.Method == http.MethodGet || r.Method == http.MethodHead

			if detect && isRead && locale == b.defaultLocale && cookie == nil {
				if preferred, ok := b.Match(r.Header.Get("Accept-Language")); ok && preferred != locale {
					target := b.LocalizePath(preferred, rest)
					if r.URL.RawQuery != "" {
						target += "?" + r.URL.RawQuery
					}
					http.Redirect(w, r, target, http.StatusTemporaryRedirect)
					return
				}
			}

			if isRead && (cookie == nil || cookie.Value != locale) {
				http.SetCookie(w, &http.Cookie{
					Name:     CookieName,
					Value:    locale,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					SameSite: http.SameSiteLaxMode,
				})
			}

			p := NewPrinter(b, nf, locale, rest)
			next.ServeHTTP(w, r.WithContext(WithPrinter(r.Context(), p)))
		})
	}
}

// RedirectDefaultPrefix sends "/<default>/..." to the unprefixed path. The
// target always starts with exactly one slash so it stays on this host.
func (b *Bundle) RedirectDefaultPrefix(w http.ResponseWriter, r *http.Request) {
	_, rest := splitFirst(r.URL.Path)
	rest = "/" + strings.TrimLeft(rest, `/\`)
	if r.URL.RawQuery != "" {
		rest += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, rest, http.StatusPermanentRedirect)
}
