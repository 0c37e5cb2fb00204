package subtitles

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
	"github.com/GuxJ02/API-ExtensionChrome/internal/ytdlp"
)

const sampleVTT = `WEBVTT
Kind: captions
Language: es

00:00:00.000 --> 00:00:05.000
Hola a todos
bienvenidos

00:00:05.000 --> 00:00:09.500
al canal

00:00:09.500 --> 00:00:10.000

`

func TestParseVTT(t *testing.T) {
	cues, err := ParseVTT([]byte(sampleVTT))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2: %#v", len(cues), cues)
	}
	// les retours à la ligne internes deviennent des espaces
	if cues[0].Text != "Hola a todos bienvenidos" {
		t.Errorf("first cue text = %q", cues[0].Text)
	}
	if cues[0].Start != 0 || cues[0].End != 5 {
		t.Errorf("first cue bounds = %v..%v", cues[0].Start, cues[0].End)
	}
	if cues[1].Start != 5 || cues[1].End != 9.5 {
		t.Errorf("second cue bounds = %v..%v", cues[1].Start, cues[1].End)
	}
}

func TestParseVTTRejectsGarbage(t *testing.T) {
	if _, err := ParseVTT(nil); err == nil {
		t.Error("empty input must fail")
	}
	if _, err := ParseVTT([]byte("this is not a subtitle file")); err == nil {
		t.Error("non-vtt input must fail")
	}
}

// fakeYtDlp implémente ytdlp.Interface pour les tests de la source.
type fakeYtDlp struct {
	raw *ytdlp.ExtractedRaw
	err error
}

func (f *fakeYtDlp) CheckBinary() error { return nil }

func (f *fakeYtDlp) GetVersion(ctx context.Context) (string, error) { return "test", nil }

func (f *fakeYtDlp) ExtractRaw(ctx context.Context, url string) (*ytdlp.ExtractedRaw, error) {
	return f.raw, f.err
}

func metaJSON(vttURL string) []byte {
	return []byte(fmt.Sprintf(
		`{"id":"abc","title":"t","requested_subtitles":{"es":{"ext":"vtt","url":%q}}}`,
		vttURL))
}

func TestFetchCuesHappyPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleVTT))
	}))
	defer srv.Close()

	src := NewFallbackSource(&fakeYtDlp{raw: &ytdlp.ExtractedRaw{JSON: metaJSON(srv.URL)}})
	cues, err := src.FetchCues(context.Background(), "abc", []string{"es", "en"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
}

func TestFetchCuesNoTrackResolved(t *testing.T) {
	src := NewFallbackSource(&fakeYtDlp{raw: &ytdlp.ExtractedRaw{JSON: []byte(`{"id":"abc"}`)}})
	_, err := src.FetchCues(context.Background(), "abc", []string{"es"})
	if !errors.Is(err, captions.ErrNoSubtitles) {
		t.Fatalf("expected ErrNoSubtitles, got %v", err)
	}
}

func TestFetchCuesDownloadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := NewFallbackSource(&fakeYtDlp{raw: &ytdlp.ExtractedRaw{JSON: metaJSON(srv.URL)}})
	_, err := src.FetchCues(context.Background(), "abc", []string{"es"})
	if !errors.Is(err, captions.ErrSubtitleDownload) {
		t.Fatalf("expected ErrSubtitleDownload, got %v", err)
	}
}

func TestFetchCuesParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("definitely not vtt"))
	}))
	defer srv.Close()

	src := NewFallbackSource(&fakeYtDlp{raw: &ytdlp.ExtractedRaw{JSON: metaJSON(srv.URL)}})
	_, err := src.FetchCues(context.Background(), "abc", []string{"es"})
	if !errors.Is(err, captions.ErrSubtitleParse) {
		t.Fatalf("expected ErrSubtitleParse, got %v", err)
	}
}

func TestFetchCuesExtractFailure(t *testing.T) {
	src := NewFallbackSource(&fakeYtDlp{err: fmt.Errorf("binary exploded")})
	_, err := src.FetchCues(context.Background(), "abc", []string{"es"})
	if !errors.Is(err, captions.ErrNoSubtitles) {
		t.Fatalf("expected ErrNoSubtitles wrap, got %v", err)
	}
}
