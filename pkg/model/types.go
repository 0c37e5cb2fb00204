package model

import "fmt"

// SubSource représente la provenance d'une piste de sous-titres côté yt-dlp.
// requested = pistes retenues par yt-dlp selon --sub-langs
// automatic = généré automatiquement par Youtube
// manual = fourni par l'auteur de la vidéo
type SubSource string

const (
	SubSourceUnknown   SubSource = "unknown"
	SubSourceRequested SubSource = "requested"
	SubSourceAutomatic SubSource = "automatic"
	SubSourceManual    SubSource = "manual"
)

func (s SubSource) String() string {
	switch s {
	case SubSourceRequested:
		return "requested subtitles"
	case SubSourceAutomatic:
		return "auto captions"
	case SubSourceManual:
		return "manual subtitles"
	default:
		return "unknown subtitles"
	}
}

// SubtitleTrack décrit une piste de sous-titres associée à une vidéo.
type SubtitleTrack struct {
	Lang   string    `json:"lang"`
	Ext    string    `json:"ext,omitempty"`
	URL    string    `json:"url,omitempty"`
	Source SubSource `json:"source,omitempty"`
}

func (s SubtitleTrack) String() string {
	return fmt.Sprintf("SubtitleTrack(lang=%s, ext=%s, source=%s)", s.Lang, s.Ext, s.Source)
}

// Cue est une entrée de sous-titre brute : début/fin en secondes + texte.
// Les deux sources (transcript et yt-dlp/VTT) produisent la même forme,
// triée par Start croissant. Immuable une fois construite.
type Cue struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration retourne la durée du cue en secondes.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// Chunk est un bloc de cues fusionnés, présenté au LLM avec son intervalle
// de temps formaté "[HH:MM:SS.mmm–HH:MM:SS.mmm]".
type Chunk struct {
	TSRange string `json:"ts_range"`
	Text    string `json:"text"`
}

func (c Chunk) String() string {
	return c.TSRange + " " + c.Text
}
