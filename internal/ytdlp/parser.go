package ytdlp

import (
	"encoding/json"
	"fmt"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

// Parse transforme le JSON brut de yt-dlp en struct Meta.
func Parse(raw []byte) (*model.Meta, error) {
	var y ytdlpOutput
	if err := json.Unmarshal(raw, &y); err != nil {
		return nil, fmt.Errorf("unmarshal ytdlp output: %w", err)
	}

	meta := &model.Meta{
		ID:        y.ID,
		Title:     y.Title,
		Requested: toTrackMap(y.RequestedSubs, model.SubSourceRequested),
		Auto:      toTrackMap(y.AutomaticCaptions, model.SubSourceAutomatic),
		Manual:    toTrackMap(y.Subtitles, model.SubSourceManual),
	}
	return meta, nil
}

func toTrackMap(in map[string]trackList, src model.SubSource) model.TrackMap {
	if len(in) == 0 {
		return nil
	}
	out := make(model.TrackMap, len(in))
	for lang, items := range in {
		tracks := make([]model.SubtitleTrack, 0, len(items))
		for _, it := range items {
			tracks = append(tracks, model.SubtitleTrack{
				Lang:   lang,
				Ext:    it.Ext,
				URL:    it.URL,
				Source: src,
			})
		}
		if len(tracks) > 0 {
			out[lang] = tracks
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SelectTrack choisit la piste de sous-titres à télécharger.
//
// Priorité des maps : requested_subtitles, puis automatic_captions, puis
// subtitles : on s'arrête à la PREMIÈRE map non vide. Dans cette map, on
// prend la première langue préférée présente, dans l'ordre de préférence ;
// si la langue expose plusieurs pistes, une entrée vtt est préférée, sinon
// la première de la liste. Retourne false si la map retenue ne contient
// aucune langue demandée.
func SelectTrack(m *model.Meta, langs []string) (model.SubtitleTrack, bool) {
	var empty model.SubtitleTrack
	if m == nil {
		return empty, false
	}

	var pool model.TrackMap
	switch {
	case !m.Requested.IsEmpty():
		pool = m.Requested
	case !m.Auto.IsEmpty():
		pool = m.Auto
	case !m.Manual.IsEmpty():
		pool = m.Manual
	default:
		return empty, false
	}

	for _, lang := range langs {
		tracks, ok := pool[lang]
		if !ok || len(tracks) == 0 {
			continue
		}
		for _, t := range tracks {
			if t.Ext == "vtt" && t.URL != "" {
				return t, true
			}
		}
		if tracks[0].URL != "" {
			return tracks[0], true
		}
	}
	return empty, false
}
