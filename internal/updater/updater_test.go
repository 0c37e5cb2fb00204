package updater

import (
	"encoding/json"
	"testing"

	"github.com/GuxJ02/API-ExtensionChrome/pkg/github"
)

const sampleRelease = `{
  "tag_name": "2025.08.27",
  "html_url": "https://github.com/yt-dlp/yt-dlp/releases/tag/2025.08.27",
  "assets": [
    {"name": "yt-dlp.exe", "browser_download_url": "https://example.com/yt-dlp.exe", "content_type": "application/x-msdownload"},
    {"name": "yt-dlp", "browser_download_url": "https://example.com/yt-dlp", "content_type": "application/octet-stream"},
    {"name": "yt-dlp.tar.gz", "browser_download_url": "https://example.com/yt-dlp.tar.gz", "content_type": "application/gzip"}
  ]
}`

func mustRelease(t *testing.T, raw string) *github.Release {
	t.Helper()
	var rel github.Release
	if err := json.Unmarshal([]byte(raw), &rel); err != nil {
		t.Fatalf("unmarshal release: %v", err)
	}
	return &rel
}

func TestReleaseInfoFrom(t *testing.T) {
	info, err := releaseInfoFrom(mustRelease(t, sampleRelease))
	if err != nil {
		t.Fatalf("releaseInfoFrom: %v", err)
	}

	if info.TagName != "2025.08.27" {
		t.Errorf("TagName = %q", info.TagName)
	}
	if info.WindowsRelease.BrowserDownloadURL != "https://example.com/yt-dlp.exe" {
		t.Errorf("WindowsRelease = %+v", info.WindowsRelease)
	}
	if info.LinuxRelease.BrowserDownloadURL != "https://example.com/yt-dlp" {
		t.Errorf("LinuxRelease = %+v", info.LinuxRelease)
	}
}

func TestReleaseInfoFromMissingAsset(t *testing.T) {
	rel := mustRelease(t, sampleRelease)
	rel.Assets = rel.Assets[:1] // seulement l'exe Windows

	if _, err := releaseInfoFrom(rel); err == nil {
		t.Fatal("expected error for missing Linux asset")
	}
}

func TestGetUpdateLink(t *testing.T) {
	info, err := releaseInfoFrom(mustRelease(t, sampleRelease))
	if err != nil {
		t.Fatal(err)
	}
	u := UpdateCheck{LatestRelease: info}

	if got := u.GetUpdateLink("windows"); got != "https://example.com/yt-dlp.exe" {
		t.Errorf("windows link = %q", got)
	}
	if got := u.GetUpdateLink("linux"); got != "https://example.com/yt-dlp" {
		t.Errorf("linux link = %q", got)
	}
}
