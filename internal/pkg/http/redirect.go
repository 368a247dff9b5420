package http

import "net/url"

// LoginRedirectURL builds the login location carrying the originally requested path.
func LoginRedirectURL(path string) string {
	return LoginPath + "?" + RedirectQueryParam + "=" + url.QueryEscape(path)
}
