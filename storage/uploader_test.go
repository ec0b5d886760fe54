package storage

import (
	"strings"
	"testing"
)

func TestAllowedFile(t *testing.T) {
	allowed := []string{
		"photo.png", "photo.PNG", "clip.mp4", "clip.webm",
		"resume.pdf", "icon.svg", "a.jpg", "b.jpeg", "c.gif",
	}
	for _, name := range allowed {
		if !AllowedFile(name) {
			t.Errorf("AllowedFile(%q) = false, want true", name)
		}
	}

	rejected := []string{
		"script.exe", "page.html", "archive.zip", "noextension",
		"", ".png", "shell.sh", "double.pdf.exe",
	}
	for _, name := range rejected {
		if AllowedFile(name) {
			t.Errorf("AllowedFile(%q) = true, want false", name)
		}
	}
}

func TestContentType(t *testing.T) {
	if got := ContentType("clip.mp4"); got != "video/mp4" {
		t.Errorf("ContentType(clip.mp4) = %q", got)
	}
	if got := ContentType("evil.exe"); got != "" {
		t.Errorf("ContentType(evil.exe) = %q, want empty", got)
	}
}

func TestMediaType(t *testing.T) {
	cases := map[string]string{
		"a.png":  "image",
		"b.mp4":  "video",
		"c.webm": "video",
		"d.pdf":  "document",
	}
	for name, want := range cases {
		if got := MediaType(name); got != want {
			t.Errorf("MediaType(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestObjectName(t *testing.T) {
	name := ObjectName("../path/meu arquivo!.png")
	if strings.Contains(name, "/") || strings.Contains(name, " ") || strings.Contains(name, "!") {
		t.Errorf("ObjectName left unsafe characters: %q", name)
	}
	if !strings.HasSuffix(name, ".png") {
		t.Errorf("ObjectName lost the extension: %q", name)
	}

	// Two uploads of the same file must never collide.
	if ObjectName("photo.png") == ObjectName("photo.png") {
		t.Error("ObjectName returned the same key twice")
	}
}
