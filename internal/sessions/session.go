package sessions

import (
	"net/http"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/zotcurve/internal/query"
)

type ID string

func NewID() ID {
	return ID(gonanoid.Must())
}

// Session is the search form and results view of one visitor.
type Session struct {
	ID    ID          `json:"id"`
	Query query.Query `json:"query"`
	View  ViewState   `json:"view"`
}

func New(defaultYear string) *Session {
	return &Session{
		ID:    NewID(),
		Query: query.Default(defaultYear),
		View:  NewViewState(),
	}
}

// Reset returns the session to a fresh search form.
func (s *Session) Reset(defaultYear string) {
	s.Query = query.Default(defaultYear)
	s.View.Reset()
}

const cookieName = "session_id"

func FromCookies(cookies []*http.Cookie) (ID, bool) {
	for _, cookie := range cookies {
		if cookie.Name == cookieName && cookie.Value != "" {
			return ID(cookie.Value), true
		}
	}
	return "", false
}

var (
	minute = time.Second * 60
	hour   = minute * 60
	day    = hour * 24
)

func (s Session) ToCookies(secure bool) []*http.Cookie {
	return []*http.Cookie{
		{
			Name:     cookieName,
			Value:    string(s.ID),
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
			Expires:  time.Now().Add(30 * day),
			Secure:   secure,
		},
	}
}
