package assets

import "embed"

//go:embed youtubeqa.example.yaml
//go:embed templates/*tmpl
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "youtubeqa.example.yaml"

// TemplateByName donne un accès par clé aux templates embarqués.
var TemplateByName = map[string]string{
	"qa_prompt": "templates/qa_prompt.txt.tmpl",
}
