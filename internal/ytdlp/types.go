package ytdlp

import (
	"encoding/json"
	"fmt"
)

type subtitleItem struct {
	Ext string `json:"ext"`
	URL string `json:"url"`
}

// trackList accepte les deux formes que yt-dlp emploie selon la map :
// requested_subtitles associe la langue à UN objet, subtitles et
// automatic_captions à une LISTE d'objets. On normalise tout en liste.
type trackList []subtitleItem

func (t *trackList) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty subtitle entry")
	}
	if b[0] == '[' {
		var items []subtitleItem
		if err := json.Unmarshal(b, &items); err != nil {
			return err
		}
		*t = items
		return nil
	}
	var item subtitleItem
	if err := json.Unmarshal(b, &item); err != nil {
		return err
	}
	*t = trackList{item}
	return nil
}

// ytdlpOutput représente la sortie JSON brute retournée par yt-dlp pour une
// vidéo. Seuls les champs utiles à la résolution de sous-titres sont mappés.
//
// Les trois maps sont indexées par code langue (ex. "es", "en", "es-419") ;
// la valeur liste les pistes disponibles pour cette langue, chaque élément
// portant au minimum l'extension du fichier (Ext) et son URL.
type ytdlpOutput struct {
	ID                string               `json:"id"`
	Title             string               `json:"title"`
	RequestedSubs     map[string]trackList `json:"requested_subtitles"`
	AutomaticCaptions map[string]trackList `json:"automatic_captions"`
	Subtitles         map[string]trackList `json:"subtitles"`
}

// ExtractedRaw contient le JSON brut + les lignes d'avertissement de yt-dlp.
type ExtractedRaw struct {
	JSON     []byte
	Warnings []string
}

// YtDlp représente la commande yt-dlp à exécuter (nom de binaire ou chemin).
type YtDlp struct {
	Name   string
	Path   string // chemin résolu vers l'exe
	Config Config
}
