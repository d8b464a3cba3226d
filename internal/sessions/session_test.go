package sessions

import (
	"net/http"
	"testing"

	"github.com/zotcurve/internal/query"
)

func TestViewStateSelect(t *testing.T) {
	view := NewViewState()

	prevID, _ := view.Select(1, "white")
	if prevID != NoSelection {
		t.Fatalf("expected no previous selection, got %d", prevID)
	}

	prevID, prevColor := view.Select(4, "grey")
	if prevID != 1 || prevColor != "white" {
		t.Fatalf("expected previous (1, white), got (%d, %s)", prevID, prevColor)
	}

	if got := view.RowColor(4, "grey"); got != HighlightColor {
		t.Fatalf("expected highlight, got %q", got)
	}
	if got := view.RowColor(1, "white"); got != "white" {
		t.Fatalf("expected base color, got %q", got)
	}

	view.Reset()
	if view.SelectedID != NoSelection || view.PreviousColor != "" {
		t.Fatalf("expected reset view, got %+v", view)
	}
}

func TestSessionReset(t *testing.T) {
	session := New("2018to19")
	session.Query.Title = "calculus"
	session.View.Select(2, "white")

	session.Reset("2017to18")

	if session.Query != query.Default("2017to18") {
		t.Fatalf("expected default query, got %+v", session.Query)
	}
	if session.View.SelectedID != NoSelection {
		t.Fatalf("expected no selection, got %d", session.View.SelectedID)
	}
}

func TestCookiesRoundTrip(t *testing.T) {
	session := New("2018to19")
	id, ok := FromCookies(session.ToCookies(false))
	if !ok {
		t.Fatal("session id missing from cookies")
	}
	if id != session.ID {
		t.Fatalf("expected %q, got %q", session.ID, id)
	}

	if _, ok := FromCookies([]*http.Cookie{{Name: "other", Value: "x"}}); ok {
		t.Fatal("expected no session id")
	}
}
