package main

import (
	"os"
	"strings"
	"testing"
)

func TestPlacementArgsCount(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantErr bool
	}{
		{"too few", 6, true},
		{"fixed args only", 7, false},
		{"dangling file", 8, true},
		{"dangling coordinate", 9, true},
		{"one placement", 10, false},
		{"two placements", 13, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]string, tt.count)
			for i := range args {
				args[i] = "1"
			}
			err := placementArgs(nil, args)
			if (err != nil) != tt.wantErr {
				t.Errorf("placementArgs(%d args) error = %v, wantErr %v", tt.count, err, tt.wantErr)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	args := []string{
		"out.DS_Store", "bg.png", "640", "400", "My App", "128", "12",
		"MyApp.app", "160", "200",
		"Applications", "480", "200",
	}

	out, l, err := parseLayout(args)
	if err != nil {
		t.Fatalf("parseLayout: %v", err)
	}
	if out != "out.DS_Store" {
		t.Errorf("output = %q", out)
	}
	if l.BackgroundFile != "bg.png" || l.VolumeName != "My App" {
		t.Errorf("names = %q, %q", l.BackgroundFile, l.VolumeName)
	}
	if l.BackgroundWidth != 640 || l.BackgroundHeight != 400 {
		t.Errorf("dimensions = %dx%d", l.BackgroundWidth, l.BackgroundHeight)
	}
	if l.IconSize != 128 || l.TextSize != 12 {
		t.Errorf("sizes = %d, %d", l.IconSize, l.TextSize)
	}
	if len(l.Placements) != 2 {
		t.Fatalf("placements = %d", len(l.Placements))
	}
	if p := l.Placements[0]; p.Name != "MyApp.app" || p.X != 160 || p.Y != 200 {
		t.Errorf("placement 0 = %+v", p)
	}
	if p := l.Placements[1]; p.Name != "Applications" || p.X != 480 || p.Y != 200 {
		t.Errorf("placement 1 = %+v", p)
	}
}

func TestParseLayoutRejectsBadNumbers(t *testing.T) {
	base := []string{"out", "bg.png", "640", "400", "Vol", "128", "12"}

	tests := []struct {
		name     string
		mutate   func([]string)
		wantWord string
	}{
		{"trailing garbage", func(a []string) { a[2] = "640px" }, "background width"},
		{"negative", func(a []string) { a[3] = "-400" }, "background height"},
		{"hex", func(a []string) { a[5] = "0x80" }, "icon size"},
		{"empty", func(a []string) { a[6] = "" }, "text size"},
		{"spaces", func(a []string) { a[2] = " 640" }, "background width"},
		{"overflow", func(a []string) { a[2] = "4294967296" }, "background width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string(nil), base...)
			tt.mutate(args)
			_, _, err := parseLayout(args)
			if err == nil {
				t.Fatal("expected parse error")
			}
			if !strings.Contains(err.Error(), tt.wantWord) {
				t.Errorf("error %q does not name %q", err, tt.wantWord)
			}
		})
	}
}

func TestParseLayoutRejectsBadCoordinate(t *testing.T) {
	args := []string{
		"out", "bg.png", "640", "400", "Vol", "128", "12",
		"MyApp.app", "160", "bottom",
	}
	_, _, err := parseLayout(args)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "MyApp.app") {
		t.Errorf("error %q does not name the placement", err)
	}
}

func TestRunForgeWritesArtifact(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("bg.png", []byte("not a real png"), 0o644); err != nil {
		t.Fatal(err)
	}

	args := []string{
		".DS_Store", "bg.png", "640", "400", "MyVolume", "128", "12",
		"MyApp.app", "160", "200",
	}
	if err := runForge(args); err != nil {
		t.Fatalf("runForge: %v", err)
	}

	data, err := os.ReadFile(".DS_Store")
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 4164 {
		t.Errorf("artifact size = %d, want 4164", len(data))
	}
	want := []byte{0, 0, 0, 1, 'B', 'u', 'd', '1'}
	for i, b := range want {
		if data[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, data[i], b)
		}
	}
}

func TestRunForgeMissingBackground(t *testing.T) {
	t.Chdir(t.TempDir())

	args := []string{".DS_Store", "bg.png", "640", "400", "MyVolume", "128", "12"}
	err := runForge(args)
	if err == nil {
		t.Fatal("expected error for missing background image")
	}
	if !strings.Contains(err.Error(), "bg.png") {
		t.Errorf("error %q does not name the background image", err)
	}
	if _, statErr := os.Stat(".DS_Store"); !os.IsNotExist(statErr) {
		t.Error("output file must not be created on failure")
	}
}
