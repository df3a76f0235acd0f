package web

import (
	"crypto/rand"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName       = "quotesforever"
	sessionKeyQuoteID = "current_quote_id"
	sessionKeyPage    = "active_page"
)

// newSessionStore builds the cookie session store that carries the
// currently displayed quote and active page for each viewer. When no key
// is configured a random one is generated, which invalidates sessions
// across restarts.
func newSessionStore(key string) *sessions.CookieStore {
	secret := []byte(key)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic(err)
		}
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// session fetches the viewer's session, falling back to a fresh one when
// the cookie fails to decode.
func (h *Handlers) session(r *http.Request) *sessions.Session {
	sess, err := h.sessions.Get(r, sessionName)
	if err != nil {
		// Stale or tampered cookie: Get already returned a new session.
		h.logger.Debug("session decode failed, starting fresh", "err", err)
	}
	return sess
}

// currentQuoteID reads the pinned quote id from the session.
func currentQuoteID(sess *sessions.Session) (int64, bool) {
	id, ok := sess.Values[sessionKeyQuoteID].(int64)
	return id, ok
}

// flashes drains the session's flash messages into strings.
func flashes(sess *sessions.Session) []string {
	raw := sess.Flashes()
	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
