package ia

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/GuxJ02/API-ExtensionChrome/internal/assets"
	"github.com/GuxJ02/API-ExtensionChrome/pkg/model"
)

// PromptData : données injectées dans le template de prompt QA.
type PromptData struct {
	Chunks   []model.Chunk
	Question string
}

var qaTemplate = template.Must(loadQATemplate())

func loadQATemplate() (*template.Template, error) {
	// récupération du chemin dans l'embed
	tplPath := assets.TemplateByName["qa_prompt"]
	if tplPath == "" {
		return nil, fmt.Errorf("template qa_prompt introuvable dans assets.TemplateByName")
	}
	return template.ParseFS(assets.Embedded, tplPath)
}

// BuildQAPrompt assemble le prompt final envoyé au LLM : la transcription
// segmentée avec ses timestamps, les consignes, puis la question du user.
func BuildQAPrompt(chunks []model.Chunk, question string) (string, error) {
	var sb strings.Builder
	data := PromptData{Chunks: chunks, Question: question}
	if err := qaTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendu du template qa_prompt: %w", err)
	}
	return strings.TrimSpace(sb.String()), nil
}
