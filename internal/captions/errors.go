package captions

import "errors"

// Taxonomie des échecs de récupération de sous-titres. Tous remontent tels
// quels jusqu'à la frontière HTTP ; seule la distinction définitif /
// non-définitif pilote la bascule primaire -> fallback.
var (
	// ErrSubtitlesUnavailable : aucun transcript dans les langues préférées
	// (transcripts désactivés ou introuvables). Définitif : pas de fallback,
	// yt-dlp ne trouvera rien de plus.
	ErrSubtitlesUnavailable = errors.New("no hay subtítulos disponibles en español/inglés")

	// ErrVideoUnavailable : la vidéo n'existe pas ou est restreinte. Définitif.
	ErrVideoUnavailable = errors.New("el vídeo no está disponible")

	// ErrTranscriptFetch : échec transitoire/inconnu de la source primaire.
	// Non-définitif : déclenche le fallback yt-dlp.
	ErrTranscriptFetch = errors.New("transcript fetch failed")

	// ErrNoSubtitles : la métadonnée yt-dlp ne résout aucune URL VTT.
	ErrNoSubtitles = errors.New("no hay subtítulos VTT disponibles en yt-dlp")

	// ErrSubtitleDownload / ErrSubtitleParse : échecs I/O et format du
	// chemin fallback.
	ErrSubtitleDownload = errors.New("subtitle download failed")
	ErrSubtitleParse    = errors.New("subtitle parse failed")
)

// IsDefinitive retourne true pour les erreurs qui interdisent tout fallback :
// réessayer avec une autre source masquerait un état réel de la vidéo.
func IsDefinitive(err error) bool {
	return errors.Is(err, ErrSubtitlesUnavailable) || errors.Is(err, ErrVideoUnavailable)
}
