package ytdlp

import (
	"testing"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

const sampleJSON = `{
  "id": "dQw4w9WgXcQ",
  "title": "Un vídeo cualquiera",
  "requested_subtitles": {
    "es": {"ext": "vtt", "url": "https://example.com/es.vtt"}
  },
  "automatic_captions": {
    "en": [
      {"ext": "json3", "url": "https://example.com/en.json3"},
      {"ext": "vtt", "url": "https://example.com/en.vtt"}
    ]
  },
  "subtitles": {
    "fr": [{"ext": "vtt", "url": "https://example.com/fr.vtt"}]
  }
}`

func TestParseNormalizesBothEntryShapes(t *testing.T) {
	meta, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if meta.ID != "dQw4w9WgXcQ" {
		t.Errorf("id = %q", meta.ID)
	}
	// requested_subtitles est un objet par langue -> normalisé en liste
	if got := len(meta.Requested["es"]); got != 1 {
		t.Fatalf("requested es tracks = %d; want 1", got)
	}
	if meta.Requested["es"][0].Source != model.SubSourceRequested {
		t.Errorf("source = %v", meta.Requested["es"][0].Source)
	}
	// automatic_captions est déjà une liste
	if got := len(meta.Auto["en"]); got != 2 {
		t.Fatalf("auto en tracks = %d; want 2", got)
	}
}

func TestSelectTrackPriorities(t *testing.T) {
	meta, err := Parse([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	// requested_subtitles est non vide : il gagne sur auto et manual
	track, ok := SelectTrack(meta, []string{"es", "en"})
	if !ok {
		t.Fatal("expected a track")
	}
	if track.URL != "https://example.com/es.vtt" || track.Source != model.SubSourceRequested {
		t.Errorf("selected %+v", track)
	}
}

func TestSelectTrackFirstNonEmptyMapOnly(t *testing.T) {
	// requested vide -> on passe à automatic_captions ; "fr" n'existe que
	// dans subtitles mais la map retenue est automatic : pas de résultat.
	meta := &model.Meta{
		Auto: model.TrackMap{
			"en": {{Lang: "en", Ext: "vtt", URL: "u-en", Source: model.SubSourceAutomatic}},
		},
		Manual: model.TrackMap{
			"fr": {{Lang: "fr", Ext: "vtt", URL: "u-fr", Source: model.SubSourceManual}},
		},
	}

	if _, ok := SelectTrack(meta, []string{"fr"}); ok {
		t.Fatal("must not fall through to a later map")
	}

	track, ok := SelectTrack(meta, []string{"fr", "en"})
	if !ok || track.URL != "u-en" {
		t.Fatalf("expected en track from automatic captions, got %+v ok=%v", track, ok)
	}
}

func TestSelectTrackPrefersVTTWithinLanguage(t *testing.T) {
	meta := &model.Meta{
		Auto: model.TrackMap{
			"en": {
				{Lang: "en", Ext: "json3", URL: "u-json3", Source: model.SubSourceAutomatic},
				{Lang: "en", Ext: "vtt", URL: "u-vtt", Source: model.SubSourceAutomatic},
			},
		},
	}

	track, ok := SelectTrack(meta, []string{"en"})
	if !ok || track.URL != "u-vtt" {
		t.Fatalf("expected vtt entry, got %+v ok=%v", track, ok)
	}
}

func TestSelectTrackNoSubsAtAll(t *testing.T) {
	if _, ok := SelectTrack(&model.Meta{}, []string{"es"}); ok {
		t.Fatal("empty meta must not yield a track")
	}
	if _, ok := SelectTrack(nil, []string{"es"}); ok {
		t.Fatal("nil meta must not yield a track")
	}
}

func TestBuildArgs(t *testing.T) {
	cfg := NewConfig([]string{"es", "en"}, false)
	args := cfg.BuildArgs("https://www.youtube.com/watch?v=abc")

	want := []string{
		"--no-config", "-j", "--skip-download",
		"--write-subs", "--write-auto-subs",
		"--sub-langs", "es,en",
		"--sub-format", "vtt",
		"--no-warnings", "--no-progress", "--no-update",
		"https://www.youtube.com/watch?v=abc",
	}
	if len(args) != len(want) {
		t.Fatalf("args = %v; want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg %d = %q; want %q", i, args[i], want[i])
		}
	}
}
