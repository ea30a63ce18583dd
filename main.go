package main

import (
	"flag"
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/vhiribarren/raytracer-go/pkg/renderer"
	"github.com/vhiribarren/raytracer-go/pkg/scene"
)

// createScene builds a sample scene by name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "showcase":
		return scene.NewShowcaseScene(), nil
	case "spotlit":
		return scene.NewSpotlitScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %s", sceneType)
	}
}

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "showcase", "Scene type: 'showcase' or 'spotlit'")
	width := flag.Int("width", 800, "Image width; height follows the camera ratio")
	samples := flag.Int("samples", 1, "Jittered samples per pixel; 1 = center sampling")
	seed := flag.Int64("seed", 0, "Seed for jittered sampling")
	parallel := flag.Bool("parallel", false, "Render with the worker pool")
	workers := flag.Int("workers", 0, "Number of workers (0 = one per CPU)")
	output := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  showcase - Checkered and glass spheres over a mirror floor")
		fmt.Println("  spotlit  - Spot-lit spheres on a finite floor")
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene_type>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting raytracer...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("%v. Using showcase scene.\n", err)
		selectedScene = scene.NewShowcaseScene()
		*sceneType = "showcase" // Normalize the scene type for directory creation
	}

	// The camera fixes the aspect ratio; only the width is configurable
	height := int(math.Round(float64(*width) / selectedScene.Camera.SizeRatio()))

	var strategy renderer.SamplingStrategy = renderer.NewCenterSampling()
	if *samples > 1 {
		strategy = renderer.NewRandomSampling(*samples)
	}

	engine, err := renderer.NewEngine(selectedScene, renderer.Config{
		Width:      *width,
		Height:     height,
		Strategy:   strategy,
		Parallel:   *parallel,
		NumWorkers: *workers,
		Seed:       *seed,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fb, stats := engine.RenderAll()
	fmt.Printf("Render completed in %v (%d pixels, %d primary rays, %d workers)\n",
		stats.Duration, stats.TotalPixels, stats.PrimaryRays, stats.Workers)

	outputDir := filepath.Join(*output, *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}
