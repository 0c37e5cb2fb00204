// Package ytdlp enveloppe le binaire yt-dlp pour l'extraction de métadonnées
// (mode -j, jamais de téléchargement média). La sortie JSON est validée et
// les lignes d'avertissement conservées pour les logs.
package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Interface est l'abstraction utilisée par la source fallback. Elle facilite
// le test en autorisant une implémentation factice.
type Interface interface {
	CheckBinary() error
	GetVersion(ctx context.Context) (string, error)
	ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error)
}

// New construit une instance. resolvedPath doit être le chemin résolu vers
// l'exe (vide = recherche par nom).
func New(name string, resolvedPath string, cfg Config) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// CheckBinary vérifie que le binaire existe et n'est pas un répertoire.
// Si aucun chemin n'est résolu, on tente une découverte dans le PATH.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.Path
	if exe == "" {
		p, err := exec.LookPath(y.Name)
		if err != nil {
			return fmt.Errorf("yt-dlp introuvable dans le PATH (%s) : %w", y.Name, err)
		}
		y.Path = p
		return nil
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("yt-dlp introuvable (%s) à l'emplacement spécifié : %v", exe, err)
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// GetVersion exécute yt-dlp --version et retourne sa sortie.
// Utilise CombinedOutput pour capturer stdout et stderr,
// ce qui facilite le diagnostic en cas d'échec.
func (y *YtDlp) GetVersion(ctx context.Context) (string, error) {
	exe := y.Path
	if exe == "" {
		exe = y.Name
	}
	out, err := exec.CommandContext(ctx, exe, "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("échec exécution yt-dlp --version : %w, output: %s", err, string(out))
	}
	return strings.TrimSpace(string(out)), nil
}

// ExtractRaw exécute `yt-dlp -j <url>` et renvoie la sortie JSON brute.
// La ligne JSON est séparée des avertissements éventuels avant retour.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string) (*ExtractedRaw, error) {
	start := time.Now()
	defer func() {
		log.Debug().Dur("elapsed", time.Since(start)).Str("url", url).
			Msg("yt-dlp metadata extracted")
	}()

	args := y.Config.BuildArgs(url)

	exe := y.Path
	if exe == "" {
		exe = y.Name
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, string(out))
	}

	var jsonLine string
	var warnings []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line // si plusieurs lignes JSON, prendre la dernière
		} else {
			warnings = append(warnings, line)
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("aucun JSON détecté dans la sortie: %s", string(out))
	}
	return &ExtractedRaw{
		JSON:     []byte(jsonLine),
		Warnings: warnings,
	}, nil
}

// LogWarnings trace les avertissements remontés par yt-dlp.
func (r *ExtractedRaw) LogWarnings() {
	for _, w := range r.Warnings {
		log.Warn().Str("component", "yt-dlp").Msg(w)
	}
}
