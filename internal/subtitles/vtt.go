package subtitles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/asticode/go-astisub"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

// ParseVTT parse un fichier WebVTT et retourne les cues dans l'ordre du
// fichier. Le texte de chaque cue est remis à plat : retours à la ligne
// convertis en espaces, espaces multiples réduits, trim des extrémités.
// Les cues sans texte (fréquents dans les pistes auto) sont filtrés.
func ParseVTT(data []byte) ([]model.Cue, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty vtt input")
	}

	subs, err := astisub.ReadFromWebVTT(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("read webvtt: %w", err)
	}

	cues := make([]model.Cue, 0, len(subs.Items))
	for _, item := range subs.Items {
		// item.String() joint les lignes par "\n" ; Fields remet tout à plat
		text := strings.Join(strings.Fields(item.String()), " ")
		if text == "" {
			continue
		}
		cues = append(cues, model.Cue{
			Start: item.StartAt.Seconds(),
			End:   item.EndAt.Seconds(),
			Text:  text,
		})
	}
	return cues, nil
}
