package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/GuxJ02/API-ExtensionChrome/internal/assets"
	"github.com/GuxJ02/API-ExtensionChrome/internal/bootstrap"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// struct pour les paramètres de configuration
type Config struct {
	// Serveur HTTP
	ListenAddr  string `yaml:"listen_addr"`
	Environment string `yaml:"environment"`

	// CORS
	AllowedOrigins []string `yaml:"allowed_origins"`

	// Sous-titres : langues par ordre de préférence
	Languages []string `yaml:"languages"`

	// Découpage de la transcription
	Chunking struct {
		MaxSeconds float64 `yaml:"max_seconds"`
		MaxChars   int     `yaml:"max_chars"`
	} `yaml:"chunking"`

	// Groq
	// Temperature et TopP sont des pointeurs : un champ absent reprend le
	// défaut, une valeur explicite (y compris 0) est respectée.
	Groq struct {
		Model               string   `yaml:"model"`
		Temperature         *float64 `yaml:"temperature"`
		TopP                *float64 `yaml:"top_p"`
		MaxCompletionTokens int      `yaml:"max_completion_tokens"`
		TimeoutSeconds      int      `yaml:"timeout_seconds"`
	} `yaml:"groq"`

	// yt-dlp
	YtDlp struct {
		Name            string `yaml:"name"`
		Path            string `yaml:"path"`
		ShowWarnings    bool   `yaml:"show_warnings"`
		AutoUpdateCheck bool   `yaml:"auto_update_check"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Serveur HTTP
	c.ListenAddr = ":8000"
	c.Environment = "development"

	// CORS
	c.AllowedOrigins = []string{
		"http://localhost",
		"http://localhost:3000",
		"http://127.0.0.1",
		"http://127.0.0.1:3000",
	}

	// Sous-titres
	c.Languages = []string{"es", "en"}

	// Découpage
	c.Chunking.MaxSeconds = 30
	c.Chunking.MaxChars = 500

	// Groq
	c.Groq.Model = "llama-3.3-70b-versatile"
	c.Groq.Temperature = floatPtr(0.7)
	c.Groq.TopP = floatPtr(1.0)
	c.Groq.MaxCompletionTokens = 1024
	c.Groq.TimeoutSeconds = 120

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué
// depuis internal/assets.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "youtubeqa.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	// On déserialise dans cfg initialisé : les champs absents conservent les valeurs par défaut.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	cfg.normalizeConfig()

	return cfg, nil
}

func (c *Config) normalizeConfig() {
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = ":8000"
	}

	c.Environment = strings.TrimSpace(strings.ToLower(c.Environment))
	if c.Environment == "" {
		c.Environment = "development"
	}

	if len(c.Languages) == 0 {
		c.Languages = []string{"es", "en"}
	}
	for i, l := range c.Languages {
		c.Languages[i] = strings.TrimSpace(strings.ToLower(l))
	}

	if c.Chunking.MaxSeconds <= 0 {
		c.Chunking.MaxSeconds = 30
	}
	if c.Chunking.MaxChars <= 0 {
		c.Chunking.MaxChars = 500
	}

	c.Groq.Model = strings.TrimSpace(c.Groq.Model)
	if c.Groq.Model == "" {
		c.Groq.Model = "llama-3.3-70b-versatile"
	}
	if c.Groq.Temperature == nil {
		c.Groq.Temperature = floatPtr(0.7)
	}
	if c.Groq.TopP == nil {
		c.Groq.TopP = floatPtr(1.0)
	}
	if c.Groq.MaxCompletionTokens <= 0 {
		c.Groq.MaxCompletionTokens = 1024
	}
	if c.Groq.TimeoutSeconds <= 0 {
		c.Groq.TimeoutSeconds = 120
	}

	if c.ConfigVersion <= 0 {
		c.ConfigVersion = CurrentConfigVersion
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// IsProduction indique si le serveur tourne en mode production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GroqTimeout renvoie le timeout Groq sous forme de time.Duration.
func (c *Config) GroqTimeout() time.Duration {
	return time.Duration(c.Groq.TimeoutSeconds) * time.Second
}

func floatPtr(v float64) *float64 { return &v }

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}

	// ajoute .exe si nécessaire
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		// chemin vide -> ResolvedPath vide, la découverte se fait dans
		// CheckBinary via exec.LookPath sur le nom
		c.YtDlp.ResolvedPath = ""
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
