package transcript

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
)

func TestFetchTimedText(t *testing.T) {
	const body = `<?xml version="1.0" encoding="utf-8"?>
<transcript>
  <text start="0" dur="5">Hola</text>
  <text start="5" dur="4">mundo &amp;amp; m&amp;#225;s</text>
  <text start="9" dur="2">   </text>
</transcript>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient()
	cues, err := c.fetchTimedText(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// le cue vide est filtré, les entités sont décodées, end = start + dur
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2: %#v", len(cues), cues)
	}
	if cues[0].Start != 0 || cues[0].End != 5 || cues[0].Text != "Hola" {
		t.Errorf("first cue = %+v", cues[0])
	}
	if cues[1].Text != "mundo & más" {
		t.Errorf("entities not decoded: %q", cues[1].Text)
	}
	if cues[1].End != 9 {
		t.Errorf("second cue end = %v; want 9", cues[1].End)
	}
}

func TestFetchTimedTextHTTPErrorIsNonDefinitive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient()
	_, err := c.fetchTimedText(context.Background(), srv.URL)
	if !errors.Is(err, captions.ErrTranscriptFetch) {
		t.Fatalf("expected ErrTranscriptFetch, got %v", err)
	}
	if captions.IsDefinitive(err) {
		t.Error("transport errors must stay non definitive")
	}
}

func TestFetchTimedTextBadXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not xml at all <<<"))
	}))
	defer srv.Close()

	c := NewClient()
	_, err := c.fetchTimedText(context.Background(), srv.URL)
	if !errors.Is(err, captions.ErrTranscriptFetch) {
		t.Fatalf("expected ErrTranscriptFetch, got %v", err)
	}
}
