// Package groq fournit un client minimal pour l'API chat/completions de
// Groq, en mode streaming (SSE). La réponse est accumulée et renvoyée
// entière une fois le flux terminé.
package groq

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Valeurs par défaut alignées sur le modèle utilisé en production.
const (
	DefaultModel               = "llama-3.3-70b-versatile"
	DefaultTemperature         = 0.7
	DefaultTopP                = 1.0
	DefaultMaxCompletionTokens = 1024
	DefaultTimeout             = 120 * time.Second
)

// ErrCompletion couvre tout échec de l'appel LLM (réseau, statut HTTP,
// flux SSE malformé).
var ErrCompletion = errors.New("fallo en la petición al modelo")

// Options de génération. Model, MaxCompletionTokens et Timeout vides sont
// remplacés par les défauts ; Temperature et TopP sont pris tels quels,
// 0 étant une valeur d'échantillonnage valide.
type Options struct {
	Model               string
	Temperature         float64
	TopP                float64
	MaxCompletionTokens int
	Timeout             time.Duration
}

// DefaultOptions retourne les paramètres de génération historiques.
func DefaultOptions() Options {
	return Options{
		Model:               DefaultModel,
		Temperature:         DefaultTemperature,
		TopP:                DefaultTopP,
		MaxCompletionTokens: DefaultMaxCompletionTokens,
		Timeout:             DefaultTimeout,
	}
}

func (o *Options) normalize() {
	if o.Model == "" {
		o.Model = DefaultModel
	}
	if o.MaxCompletionTokens <= 0 {
		o.MaxCompletionTokens = DefaultMaxCompletionTokens
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
}

type Client struct {
	apiKey  string
	baseURL string
	opts    Options
	httpc   *http.Client
}

// Interface permet d'injecter un faux client dans les tests.
type Interface interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

func NewClient(apiKey string, opts Options) *Client {
	opts.normalize()
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		opts:    opts,
		httpc:   &http.Client{Timeout: opts.Timeout},
	}
}

// WithBaseURL remplace l'URL de base (tests).
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	Temperature         float64       `json:"temperature"`
	TopP                float64       `json:"top_p"`
	MaxCompletionTokens int           `json:"max_completion_tokens"`
	Stream              bool          `json:"stream"`
}

// streamChunk : un événement SSE "data:" du flux de complétion.
type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content *string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete envoie le prompt et accumule les deltas du flux SSE jusqu'au
// marqueur [DONE]. Le texte renvoyé est trimé.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model:               c.opts.Model,
		Messages:            []chatMessage{{Role: "user", Content: prompt}},
		Temperature:         c.opts.Temperature,
		TopP:                c.opts.TopP,
		MaxCompletionTokens: c.opts.MaxCompletionTokens,
		Stream:              true,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: encodage de la requête: %v", ErrCompletion, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "text/event-stream")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCompletion, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.decodeError(resp)
	}

	answer, err := readStream(resp.Body)
	if err != nil {
		return "", err
	}

	log.Debug().
		Str("model", c.opts.Model).
		Dur("elapsed", time.Since(start)).
		Int("answer_len", len(answer)).
		Msg("groq completion finished")

	return answer, nil
}

func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	var apiErr apiError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("%w: %s (%s)", ErrCompletion, apiErr.Error.Message, apiErr.Error.Type)
	}
	return fmt.Errorf("%w: statut HTTP %d", ErrCompletion, resp.StatusCode)
}

// readStream parcourt les lignes SSE et concatène les deltas de contenu.
// Le champ delta.content peut être absent (rôle initial, chunk final).
func readStream(r io.Reader) (string, error) {
	var sb strings.Builder
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" {
			continue
		}
		if payload == "[DONE]" {
			break
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return "", fmt.Errorf("%w: flux SSE malformé: %v", ErrCompletion, err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if content := chunk.Choices[0].Delta.Content; content != nil {
			sb.WriteString(*content)
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: lecture du flux: %v", ErrCompletion, err)
	}

	return strings.TrimSpace(sb.String()), nil
}
