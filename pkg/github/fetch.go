package github

import (
	"context"
	"fmt"
	"time"

	"github.com/GuxJ02/API-ExtensionChrome/internal/fetch"
)

const (
	apiBase        = "https://api.github.com"
	releaseTimeout = 15 * time.Second
	releaseMaxSize = 2 << 20 // 2 MiB, largement suffisant pour une release
)

// Release : sous-ensemble des métadonnées d'une release GitHub.
type Release struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
	Assets      []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
		ContentType        string `json:"content_type"`
	} `json:"assets"`
}

// FetchLatestRelease interroge l'API GitHub pour la dernière release d'un dépôt.
func FetchLatestRelease(ctx context.Context, owner, repo string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest", apiBase, owner, repo)

	var rel Release
	if err := fetch.JSONInto(ctx, url, releaseTimeout, releaseMaxSize, &rel); err != nil {
		return nil, fmt.Errorf("release GitHub %s/%s: %w", owner, repo, err)
	}
	if rel.TagName == "" {
		return nil, fmt.Errorf("release GitHub %s/%s: tag_name absent", owner, repo)
	}
	return &rel, nil
}
