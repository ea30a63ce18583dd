package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vhiribarren/raytracer-go/pkg/renderer"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"showcase scene", "showcase", false},
		{"spotlit scene", "spotlit", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc == nil {
				t.Fatalf("Expected scene for valid scene type '%s', got nil", tt.sceneType)
			}
			if sc.Camera == nil {
				t.Error("Scene has no camera")
			}
			if sc.Camera.SizeRatio() <= 0 {
				t.Errorf("Scene camera ratio should be positive, got %v", sc.Camera.SizeRatio())
			}
			if err := sc.Validate(); err != nil {
				t.Errorf("Scene does not validate: %v", err)
			}
		})
	}
}

func TestRenderToPNG(t *testing.T) {
	sc, err := createScene("showcase")
	if err != nil {
		t.Fatalf("createScene: %v", err)
	}

	engine, err := renderer.NewEngine(sc, renderer.Config{
		Width:  64,
		Height: 36,
		Logger: &renderer.SilentLogger{},
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	fb, stats := engine.RenderAll()
	if stats.TotalPixels != 64*36 {
		t.Fatalf("rendered %d pixels, want %d", stats.TotalPixels, 64*36)
	}

	filename := filepath.Join(t.TempDir(), "render.png")
	file, err := os.Create(filename)
	if err != nil {
		t.Fatalf("creating file: %v", err)
	}
	defer file.Close()
	if err := png.Encode(file, fb.ToImage()); err != nil {
		t.Fatalf("encoding PNG: %v", err)
	}

	info, err := os.Stat(filename)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("PNG output is empty")
	}
}
