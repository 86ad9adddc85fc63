package api

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

const flashSessionName = "fyyur_flash"

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Flasher keeps flash notices in a signed cookie.
type Flasher struct {
	store sessions.Store
}

// NewFlasher signs cookies with secret. An empty secret gets a random key,
// so notices do not survive a restart.
func NewFlasher(secret string) (*Flasher, error) {
	key := []byte(secret)
	if secret == "" {
		key = securecookie.GenerateRandomKey(32)
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flasher{store: store}, nil
}

// Add queues a notice for the next page the client loads.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, kind, message string) error {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil && session == nil {
		return err
	}
	session.AddFlash(message, kind)
	return session.Save(r, w)
}

// Pop returns and clears every queued notice. A cookie that fails to decode
// is treated as empty.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil || session == nil {
		return nil
	}

	var flashes []Flash
	for _, kind := range []string{flashSuccess, flashDanger} {
		for _, message := range session.Flashes(kind) {
			if s, ok := message.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: s})
			}
		}
	}
	if len(flashes) > 0 {
		_ = session.Save(r, w)
	}
	return flashes
}
