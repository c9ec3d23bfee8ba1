package transport

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// CSRFCookieName is the cookie the server uses to hand out its CSRF token.
const CSRFCookieName = "csrftoken"

// SessionStore is the in-memory cookie jar shared by every request of a Client.
// It lives as long as the process; nothing is written to disk.
type SessionStore struct {
	mu  sync.RWMutex
	jar http.CookieJar
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{jar: newJar()}
}

// SetCookies implements http.CookieJar.
func (s *SessionStore) SetCookies(u *url.URL, cookies []*http.Cookie) {
	s.mu.RLock()
	jar := s.jar
	s.mu.RUnlock()
	jar.SetCookies(u, cookies)
}

// Cookies implements http.CookieJar.
func (s *SessionStore) Cookies(u *url.URL) []*http.Cookie {
	s.mu.RLock()
	jar := s.jar
	s.mu.RUnlock()
	return jar.Cookies(u)
}

// Cookie returns the value of the named cookie that would be sent to u.
func (s *SessionStore) Cookie(u *url.URL, name string) (string, bool) {
	for _, c := range s.Cookies(u) {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// HasCookies reports whether any cookie would be sent to u.
func (s *SessionStore) HasCookies(u *url.URL) bool {
	return len(s.Cookies(u)) > 0
}

// Reset drops every stored cookie, ending the local session.
func (s *SessionStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jar = newJar()
}

func newJar() http.CookieJar {
	// cookiejar.New only fails on invalid options; these are fixed.
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		panic(err)
	}
	return jar
}
