package ytdlp

import "strings"

// Config représente les flags ajoutés à chaque invocation de yt-dlp.
// L'extraction se limite aux métadonnées : jamais de téléchargement média.
type Config struct {
	SkipDownload  bool
	WriteSubs     bool     // --write-subs : sous-titres manuels
	WriteAutoSubs bool     // --write-auto-subs : pistes générées automatiquement
	SubLangs      []string // --sub-langs, dans l'ordre de préférence
	SubFormat     string   // --sub-format (vtt)
	NoWarnings    bool
	NoProgress    bool
	NoUpdate      bool
	NoConfig      bool // --no-config pour ignorer les configs utilisateur
}

// NewConfig initialise la configuration standard pour la résolution de
// sous-titres VTT, showWarnings vient du yaml de config.
func NewConfig(langs []string, showWarnings bool) *Config {
	return &Config{
		SkipDownload:  true,
		WriteSubs:     true,
		WriteAutoSubs: true,
		SubLangs:      langs,
		SubFormat:     "vtt",
		NoWarnings:    !showWarnings,
		NoProgress:    true,
		NoUpdate:      true,
		NoConfig:      true, // ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// BuildArgs construit la slice des arguments à passer à yt-dlp.
func (c *Config) BuildArgs(url string) []string {
	args := make([]string, 0, 16)
	// --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args, "-j")
	if c.SkipDownload {
		args = append(args, "--skip-download")
	}
	if c.WriteSubs {
		args = append(args, "--write-subs")
	}
	if c.WriteAutoSubs {
		args = append(args, "--write-auto-subs")
	}
	if len(c.SubLangs) > 0 {
		args = append(args, "--sub-langs", strings.Join(c.SubLangs, ","))
	}
	if c.SubFormat != "" {
		args = append(args, "--sub-format", c.SubFormat)
	}
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if c.NoUpdate {
		args = append(args, "--no-update")
	}
	args = append(args, url)
	return args
}
