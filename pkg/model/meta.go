package model

import (
	"fmt"
	"sort"
	"strings"
)

// TrackMap associe un code langue à la liste des pistes disponibles pour
// cette langue, telle que renvoyée par yt-dlp (une langue peut exposer
// plusieurs formats : vtt, srv1, json3...).
type TrackMap map[string][]SubtitleTrack

// IsEmpty retourne true si la map ne contient aucune piste.
func (tm TrackMap) IsEmpty() bool {
	return len(tm) == 0
}

// Langs retourne les codes langue présents, triés (utile pour les logs).
func (tm TrackMap) Langs() []string {
	out := make([]string, 0, len(tm))
	for l := range tm {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Meta regroupe les métadonnées extraites d'une vidéo par yt-dlp.
// Seuls les champs utiles à la résolution de sous-titres sont conservés.
type Meta struct {
	ID        string
	Title     string
	Requested TrackMap // requested_subtitles
	Auto      TrackMap // automatic_captions
	Manual    TrackMap // subtitles
}

func (m Meta) HasAnySubs() bool {
	return !m.Requested.IsEmpty() || !m.Auto.IsEmpty() || !m.Manual.IsEmpty()
}

func (m Meta) String() string {
	return fmt.Sprintf("Meta[ID=%s, Title=%q, Requested=%d, Auto=%d, Manual=%d]",
		m.ID, m.Title, len(m.Requested), len(m.Auto), len(m.Manual))
}

// Pretty retourne une fiche multi-lignes simple pour les logs de debug.
func (m Meta) Pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID       : %s\n", m.ID)
	fmt.Fprintf(&b, "Title    : %s\n", m.Title)
	fmt.Fprintf(&b, "Requested: %s\n", strings.Join(m.Requested.Langs(), ", "))
	fmt.Fprintf(&b, "Auto     : %s\n", strings.Join(m.Auto.Langs(), ", "))
	fmt.Fprintf(&b, "Manual   : %s\n", strings.Join(m.Manual.Langs(), ", "))
	return b.String()
}
