// Package transcript implémente la source primaire de cues : lecture de la
// page watch de Youtube, extraction de l'objet "captions" embarqué dans le
// player, puis téléchargement du timedtext XML de la piste choisie.
//
// C'est l'équivalent du lookup de transcript hébergé : aucun binaire externe,
// seulement deux GET bornés. Les échecs définitifs (transcripts désactivés,
// vidéo indisponible, aucune langue préférée) sont classifiés ici ; tout le
// reste remonte comme ErrTranscriptFetch et laisse la main au fallback.
package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
	"github.com/GuxJ02/API-ExtensionChrome/internal/fetch"
	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 10_000_000
)

// Client interroge Youtube sans clé d'API. Zéro état partagé entre requêtes.
type Client struct {
	Timeout  time.Duration
	MaxBytes int64
}

// NewClient retourne un client avec les bornes par défaut.
func NewClient() *Client {
	return &Client{Timeout: defaultTimeout, MaxBytes: defaultMaxBytes}
}

// Name implémente captions.Source.
func (c *Client) Name() string { return "transcript" }

// FetchCues récupère les cues du transcript dans la première langue préférée
// disponible. Les cues sortent triés par début, texte déjà strippé, avec
// end = start + duration.
func (c *Client) FetchCues(ctx context.Context, videoID string, langs []string) ([]model.Cue, error) {
	page, err := fetch.BytesWithTimeout(ctx, captions.WatchURL(videoID), c.Timeout, c.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: watch page: %v", captions.ErrTranscriptFetch, err)
	}

	tracks, err := extractCaptionTracks(string(page))
	if err != nil {
		return nil, err
	}

	track, ok := selectTrack(tracks, langs)
	if !ok {
		// des pistes existent mais aucune dans les langues demandées
		return nil, captions.ErrSubtitlesUnavailable
	}

	return c.fetchTimedText(ctx, track.BaseURL)
}

// fetchTimedText télécharge et décode le XML timedtext d'une piste :
// <transcript><text start="1.2" dur="3.4">…</text></transcript>
func (c *Client) fetchTimedText(ctx context.Context, baseURL string) ([]model.Cue, error) {
	data, err := fetch.BytesWithTimeout(ctx, baseURL, c.Timeout, c.MaxBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: timedtext: %v", captions.ErrTranscriptFetch, err)
	}

	var doc struct {
		XMLName xml.Name `xml:"transcript"`
		Texts   []struct {
			Start float64 `xml:"start,attr"`
			Dur   float64 `xml:"dur,attr"`
			Text  string  `xml:",chardata"`
		} `xml:"text"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: timedtext decode: %v", captions.ErrTranscriptFetch, err)
	}

	cues := make([]model.Cue, 0, len(doc.Texts))
	for _, t := range doc.Texts {
		// les entités HTML (&amp;#39; etc.) arrivent parfois doublement encodées
		text := strings.TrimSpace(html.UnescapeString(html.UnescapeString(t.Text)))
		if text == "" {
			continue
		}
		cues = append(cues, model.Cue{
			Start: t.Start,
			End:   t.Start + t.Dur,
			Text:  text,
		})
	}
	return cues, nil
}
