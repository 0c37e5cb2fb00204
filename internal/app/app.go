// Package app orchestre le pipeline complet de question-réponse :
// identifiant vidéo -> sous-titres -> découpage -> prompt -> LLM.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GuxJ02/API-ExtensionChrome/internal/captions"
	"github.com/GuxJ02/API-ExtensionChrome/internal/chunk"
	"github.com/GuxJ02/API-ExtensionChrome/internal/groq"
	"github.com/GuxJ02/API-ExtensionChrome/internal/ia"
)

// ErrEmptyTranscript : la vidéo a des pistes mais aucune cue exploitable.
var ErrEmptyTranscript = errors.New("la transcripción del vídeo está vacía")

// App relie les sources de sous-titres au client LLM.
type App struct {
	sources []captions.Source
	llm     groq.Interface
	langs   []string
	chunks  chunk.Options
}

func New(sources []captions.Source, llm groq.Interface, langs []string, chunkOpts chunk.Options) *App {
	return &App{
		sources: sources,
		llm:     llm,
		langs:   langs,
		chunks:  chunkOpts,
	}
}

// Answer exécute le pipeline pour une vidéo (URL ou identifiant) et une
// question, et renvoie la réponse du modèle.
func (a *App) Answer(ctx context.Context, video, question string) (string, error) {
	videoID := captions.ExtractVideoID(video)

	cues, err := captions.Resolve(ctx, a.sources, videoID, a.langs)
	if err != nil {
		return "", err
	}

	segments := chunk.Split(cues, a.chunks)
	if len(segments) == 0 {
		return "", ErrEmptyTranscript
	}

	prompt, err := ia.BuildQAPrompt(segments, question)
	if err != nil {
		return "", fmt.Errorf("construcción del prompt: %w", err)
	}

	log.Debug().
		Str("video_id", videoID).
		Int("cues", len(cues)).
		Int("chunks", len(segments)).
		Int("prompt_len", len(prompt)).
		Msg("pipeline ready, querying model")

	answer, err := a.llm.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	log.Info().
		Str("video_id", videoID).
		Int("answer_len", len(answer)).
		Msg("answer generated")

	return answer, nil
}
