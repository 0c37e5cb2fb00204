package transcript

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
)

// captionTrack est une piste telle que listée par le player embarqué.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = généré automatiquement
}

const captionsMarker = `"captions":`

// extractCaptionTracks localise l'objet "captions" dans le HTML de la page
// watch (comptage d'accolades, le JSON du player n'est pas délimité
// autrement) et en extrait les captionTracks.
//
// Classification au niveau page :
//   - recaptcha -> trop de requêtes, non-définitif (fallback possible)
//   - playabilityStatus ERROR -> vidéo indisponible (définitif)
//   - pas d'objet captions -> transcripts désactivés (définitif)
func extractCaptionTracks(page string) ([]captionTrack, error) {
	start := strings.Index(page, captionsMarker)
	if start == -1 {
		if strings.Contains(page, `class="g-recaptcha"`) {
			return nil, fmt.Errorf("%w: too many requests (recaptcha)", captions.ErrTranscriptFetch)
		}
		if strings.Contains(page, `"playabilityStatus":{"status":"ERROR"`) {
			return nil, captions.ErrVideoUnavailable
		}
		// la page existe mais le player n'expose aucun captions -> désactivés
		return nil, captions.ErrSubtitlesUnavailable
	}

	obj, err := balancedJSONObject(page[start+len(captionsMarker):])
	if err != nil {
		return nil, fmt.Errorf("%w: captions object: %v", captions.ErrTranscriptFetch, err)
	}

	var parsed struct {
		Renderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	}
	if err := json.Unmarshal([]byte(obj), &parsed); err != nil {
		return nil, fmt.Errorf("%w: captions decode: %v", captions.ErrTranscriptFetch, err)
	}

	if len(parsed.Renderer.CaptionTracks) == 0 {
		return nil, captions.ErrSubtitlesUnavailable
	}
	return parsed.Renderer.CaptionTracks, nil
}

// balancedJSONObject retourne le premier objet JSON complet ({...}) au début
// de s, en comptant les accolades. Suffisant pour l'objet captions : il ne
// contient pas d'accolade dans des chaînes.
func balancedJSONObject(s string) (string, error) {
	open := strings.Index(s, "{")
	if open == -1 {
		return "", fmt.Errorf("no opening brace")
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[open : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced braces")
}

// selectTrack choisit la piste : pour chaque langue préférée dans l'ordre,
// d'abord une correspondance exacte du code puis un préfixe ("es" accepte
// "es-419"). Jamais une langue hors liste.
func selectTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
		for _, t := range tracks {
			if strings.HasPrefix(t.LanguageCode, lang+"-") {
				return t, true
			}
		}
	}
	return captionTrack{}, false
}
