// Package chunk regroupe des cues bruts en blocs bornés par durée et par
// longueur de texte, en préservant l'ordre temporel et les intervalles.
//
// L'algorithme est un simple parcours gauche-droite avec un accumulateur :
// il fusionne, il ne redécoupe jamais. Un cue isolé qui dépasse à lui seul
// les seuils sort donc tel quel dans son propre chunk.
package chunk

import (
	"strings"
	"unicode/utf8"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

const (
	DefaultMaxSeconds = 30
	DefaultMaxChars   = 500
)

// Options porte les deux seuils de segmentation.
type Options struct {
	MaxSeconds float64 // durée max d'un chunk, mesurée depuis SON début
	MaxChars   int     // longueur max du texte joint, en caractères (espace de jointure compris)
}

// DefaultOptions retourne les seuils historiques (30 s / 500 caractères).
func DefaultOptions() Options {
	return Options{MaxSeconds: DefaultMaxSeconds, MaxChars: DefaultMaxChars}
}

func (o Options) normalize() Options {
	if o.MaxSeconds <= 0 {
		o.MaxSeconds = DefaultMaxSeconds
	}
	if o.MaxChars <= 0 {
		o.MaxChars = DefaultMaxChars
	}
	return o
}

// accumulator est le "chunk courant" pendant le parcours.
type accumulator struct {
	start float64
	end   float64
	text  string
}

// Split fusionne les cues adjacents en chunks selon opts.
//
// Règle de coupure : pour chaque cue candidat, la durée évaluée est
// seg.End - courant.Start (depuis le début ORIGINAL du chunk, pas depuis le
// cue précédent) et la longueur évaluée est len(courant)+1+len(seg). Si l'un
// des deux dépasse son seuil, le chunk courant est émis tel quel et le cue
// ouvre un nouveau chunk. Une liste vide en entrée retourne une liste vide.
func Split(cues []model.Cue, opts Options) []model.Chunk {
	opts = opts.normalize()

	chunks := make([]model.Chunk, 0, len(cues))
	var curr *accumulator

	for _, seg := range cues {
		text := strings.TrimSpace(seg.Text)
		if curr == nil {
			curr = &accumulator{start: seg.Start, end: seg.End, text: text}
			continue
		}

		dur := seg.End - curr.start
		// longueur en caractères, pas en octets : les accents espagnols
		// (á, é, ñ) pèsent deux octets en UTF-8
		length := utf8.RuneCountInString(curr.text) + 1 + utf8.RuneCountInString(text)
		if dur > opts.MaxSeconds || length > opts.MaxChars {
			chunks = append(chunks, curr.emit())
			curr = &accumulator{start: seg.Start, end: seg.End, text: text}
		} else {
			curr.end = seg.End
			curr.text += " " + text
		}
	}

	if curr != nil {
		chunks = append(chunks, curr.emit())
	}
	return chunks
}

func (a *accumulator) emit() model.Chunk {
	return model.Chunk{
		TSRange: FormatRange(a.start, a.end),
		Text:    a.text,
	}
}
