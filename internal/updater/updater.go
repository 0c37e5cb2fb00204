package updater

import (
	"context"
	"fmt"
	"strings"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/github"
)

// YtDlpAsset représente un exécutable Windows ou Linux.
type YtDlpAsset struct {
	Name               string
	BrowserDownloadURL string
	ContentType        string
}

// YtDlpReleaseInfo contient les métadonnées de la release
// et les deux assets spécifiques à la mise à jour.
type YtDlpReleaseInfo struct {
	TagName        string
	HTMLURL        string
	WindowsRelease YtDlpAsset
	LinuxRelease   YtDlpAsset
}

// UpdateCheck contient le résultat de la comparaison
type UpdateCheck struct {
	CurrentVersion string            // version récupérée localement
	LatestRelease  *YtDlpReleaseInfo // info complète de la release distante
	IsUpToDate     bool              // true si CurrentVersion == LatestRelease.TagName
}

// GetLatestYtDlpRelease récupère la dernière release yt-dlp sur GitHub.
func GetLatestYtDlpRelease(ctx context.Context) (*YtDlpReleaseInfo, error) {
	rel, err := github.FetchLatestRelease(ctx, "yt-dlp", "yt-dlp")
	if err != nil {
		return nil, err
	}
	return releaseInfoFrom(rel)
}

func releaseInfoFrom(rel *github.Release) (*YtDlpReleaseInfo, error) {
	info := &YtDlpReleaseInfo{
		TagName: rel.TagName,
		HTMLURL: rel.HTMLURL,
	}

	for _, a := range rel.Assets {
		switch a.Name {
		case "yt-dlp.exe":
			info.WindowsRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		case "yt-dlp":
			info.LinuxRelease = YtDlpAsset{a.Name, a.BrowserDownloadURL, a.ContentType}
		}
	}

	if info.WindowsRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Windows introuvable")
	}
	if info.LinuxRelease.BrowserDownloadURL == "" {
		return nil, fmt.Errorf("asset Linux introuvable")
	}

	return info, nil
}

// CheckYtDlpUpdate compare la version locale et la version GitHub.
func CheckYtDlpUpdate(ctx context.Context, localVer string) (*UpdateCheck, error) {
	latest, err := GetLatestYtDlpRelease(ctx)
	if err != nil {
		return nil, fmt.Errorf("impossible de récupérer la release GitHub : %w", err)
	}

	return &UpdateCheck{
		CurrentVersion: localVer,
		LatestRelease:  latest,
		IsUpToDate:     strings.TrimSpace(localVer) == latest.TagName,
	}, nil
}

// GetUpdateLink renvoie le lien de téléchargement adapté à l'OS.
func (u UpdateCheck) GetUpdateLink(system string) string {
	if system == "windows" {
		return u.LatestRelease.WindowsRelease.BrowserDownloadURL
	}
	return u.LatestRelease.LinuxRelease.BrowserDownloadURL
}
