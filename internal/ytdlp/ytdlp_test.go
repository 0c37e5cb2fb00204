package ytdlp

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckBinaryDiscoversInPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("PATH lookup semantics differ on windows")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)

	// chemin résolu vide : la découverte doit passer par exec.LookPath
	y := New("yt-dlp", "", *NewConfig([]string{"es"}, false))
	if err := y.CheckBinary(); err != nil {
		t.Fatalf("CheckBinary: %v", err)
	}
	if y.Path != exe {
		t.Errorf("Path = %q, want %q", y.Path, exe)
	}
}

func TestCheckBinaryMissingFromPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	y := New("yt-dlp", "", *NewConfig([]string{"es"}, false))
	if err := y.CheckBinary(); err == nil {
		t.Fatal("CheckBinary succeeded with empty PATH")
	}
}

func TestCheckBinaryExplicitPath(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "yt-dlp")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	y := New("yt-dlp", exe, *NewConfig([]string{"es"}, false))
	if err := y.CheckBinary(); err != nil {
		t.Fatalf("CheckBinary: %v", err)
	}

	// un répertoire n'est pas un exécutable
	y = New("yt-dlp", dir, *NewConfig([]string{"es"}, false))
	if err := y.CheckBinary(); err == nil {
		t.Fatal("CheckBinary accepted a directory")
	}
}
