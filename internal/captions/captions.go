// Package captions orchestre la résolution des cues d'une vidéo : extraction
// de l'identifiant, puis essai des sources en séquence (transcript primaire,
// fallback yt-dlp + VTT) avec la politique définitif / non-définitif.
package captions

import (
	"context"
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

// videoIDRegex capture l'identifiant 11 caractères dans les formes d'URL
// usuelles : watch?v=<id> et youtu.be/<id>.
var videoIDRegex = regexp.MustCompile(`(?:v=|be/)([\w-]{11})`)

// ExtractVideoID retourne l'identifiant capturé si arg ressemble à une URL
// Youtube, sinon arg tel quel (l'appelant est supposé avoir passé un ID nu).
// Jamais d'erreur.
func ExtractVideoID(arg string) string {
	if m := videoIDRegex.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return arg
}

// WatchURL construit l'URL watch canonique à partir d'un ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// Source est la capacité commune aux deux stratégies de récupération.
// Les implémentations doivent émettre les cues dans l'ordre du transcript.
type Source interface {
	// Name identifie la source dans les logs.
	Name() string
	FetchCues(ctx context.Context, videoID string, langs []string) ([]model.Cue, error)
}

// Resolve essaie les sources dans l'ordre. Une erreur définitive
// (ErrSubtitlesUnavailable, ErrVideoUnavailable) arrête tout immédiatement ;
// une erreur non-définitive est loguée puis on passe à la source suivante.
// La dernière erreur remonte si toutes les sources échouent.
func Resolve(ctx context.Context, sources []Source, videoID string, langs []string) ([]model.Cue, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("captions: no source configured")
	}

	var lastErr error
	for i, src := range sources {
		cues, err := src.FetchCues(ctx, videoID, langs)
		if err == nil {
			log.Info().Str("source", src.Name()).Str("video", videoID).
				Int("cues", len(cues)).Msg("cues resolved")
			return cues, nil
		}
		if IsDefinitive(err) {
			return nil, err
		}
		lastErr = err
		if i < len(sources)-1 {
			log.Warn().Str("source", src.Name()).Str("video", videoID).
				Err(err).Msg("source failed, trying next")
		}
	}
	return nil, lastErr
}
