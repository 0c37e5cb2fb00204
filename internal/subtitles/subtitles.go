// Package subtitles implémente la source fallback de cues : extraction des
// métadonnées via yt-dlp, choix d'une piste VTT dans les langues préférées,
// téléchargement du fichier puis parsing WebVTT.
package subtitles

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
	"github.com/GuxJ02/API-ExtensionChrome/internal/fetch"
	"github.com/GuxJ02/API-ExtensionChrome/internal/ytdlp"
	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

const (
	defaultExtractTimeout  = 2 * time.Minute
	defaultDownloadTimeout = 15 * time.Second
	defaultMaxBytes        = 10_000_000
)

// FallbackSource relie yt-dlp, le téléchargement VTT et le parser en une
// implémentation de captions.Source. Le client yt-dlp est injecté pour
// autoriser une implémentation factice dans les tests.
type FallbackSource struct {
	dl              ytdlp.Interface
	extractTimeout  time.Duration
	downloadTimeout time.Duration
	maxBytes        int64
}

// NewFallbackSource construit la source avec les timeouts par défaut.
func NewFallbackSource(dl ytdlp.Interface) *FallbackSource {
	return &FallbackSource{
		dl:              dl,
		extractTimeout:  defaultExtractTimeout,
		downloadTimeout: defaultDownloadTimeout,
		maxBytes:        defaultMaxBytes,
	}
}

// Name implémente captions.Source.
func (s *FallbackSource) Name() string { return "yt-dlp" }

// FetchCues résout une piste VTT via les métadonnées yt-dlp puis la
// télécharge et la parse. Même contrat de sortie que la source primaire.
func (s *FallbackSource) FetchCues(ctx context.Context, videoID string, langs []string) ([]model.Cue, error) {
	exCtx, cancel := context.WithTimeout(ctx, s.extractTimeout)
	defer cancel()

	raw, err := s.dl.ExtractRaw(exCtx, captions.WatchURL(videoID))
	if err != nil {
		return nil, fmt.Errorf("%w: yt-dlp extract: %v", captions.ErrNoSubtitles, err)
	}
	raw.LogWarnings()

	meta, err := ytdlp.Parse(raw.JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: yt-dlp metadata: %v", captions.ErrNoSubtitles, err)
	}
	if !meta.HasAnySubs() {
		return nil, fmt.Errorf("%w: %s", captions.ErrNoSubtitles, meta)
	}

	track, ok := ytdlp.SelectTrack(meta, langs)
	if !ok {
		log.Debug().Str("video", videoID).Msg("no preferred language in:\n" + meta.Pretty())
		return nil, captions.ErrNoSubtitles
	}
	log.Debug().Str("video", videoID).Str("lang", track.Lang).
		Str("source", track.Source.String()).Msg("vtt track selected")

	data, err := fetch.BytesWithTimeout(ctx, track.URL, s.downloadTimeout, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", captions.ErrSubtitleDownload, err)
	}

	cues, err := ParseVTT(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", captions.ErrSubtitleParse, err)
	}
	return cues, nil
}
