package corkboard

import (
	"net"
	"net/http"
	"net/url"

	"corkboard/core"
)

// cookieValue returns the URL-decoded value of the named cookie, or ""
// when the cookie is absent. Values that fail to decode are used as is.
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	decoded, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return cookie.Value
	}
	return decoded
}

// credentialsFromCookies reads the username and password cookies the
// board client sets on every request.
func credentialsFromCookies(r *http.Request) (username, password string) {
	return cookieValue(r, "username"), cookieValue(r, "password")
}

// remoteIP resolves the poster's address: the trusted proxy header
// first, then the direct peer, then the unknown-address placeholder.
func remoteIP(r *http.Request, proxyHeader string) string {
	if proxyHeader != "" {
		if ip := r.Header.Get(proxyHeader); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host != "" {
		return host
	}

	return core.UnknownIP
}
