package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vhiribarren/raytracer-go/pkg/renderer"
	"github.com/vhiribarren/raytracer-go/pkg/scene"
)

// Game drives the progressive engine from the display loop: each tick renders
// a budget of pixels, so the window stays responsive while the image fills in
// scan line by scan line.
type Game struct {
	engine        *renderer.Engine
	frame         *ebiten.Image
	pixelsPerTick int
	reported      bool
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.engine.Stop()
		return ebiten.Termination
	}
	for i := 0; i < g.pixelsPerTick; i++ {
		if _, ok := g.engine.NextPixel(); !ok {
			if !g.reported && g.engine.State() == renderer.StateComplete {
				g.reported = true
				stats := g.engine.Stats()
				log.Printf("Render complete: %d pixels in %v", stats.TotalPixels, stats.Duration)
			}
			return nil
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.frame.WritePixels(g.engine.FrameBuffer().Pix())
	screen.DrawImage(g.frame, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	fb := g.engine.FrameBuffer()
	return fb.Width(), fb.Height()
}

func buildScene(name string) *scene.Scene {
	switch name {
	case "showcase":
		return scene.NewShowcaseScene()
	case "spotlit":
		return scene.NewSpotlitScene()
	default:
		return nil
	}
}

func main() {
	sceneName := flag.String("scene", "showcase", "Scene to render: showcase, spotlit")
	width := flag.Int("width", 800, "Image width; height follows the camera ratio")
	samples := flag.Int("samples", 1, "Jittered samples per pixel; 1 = center sampling")
	seed := flag.Int64("seed", 0, "Seed for jittered sampling")
	budget := flag.Int("budget", 2000, "Pixels rendered per display tick")
	flag.Parse()

	sceneObj := buildScene(*sceneName)
	if sceneObj == nil {
		fmt.Fprintf(os.Stderr, "Unknown scene: %s\n", *sceneName)
		os.Exit(1)
	}

	height := int(math.Round(float64(*width) / sceneObj.Camera.SizeRatio()))
	var strategy renderer.SamplingStrategy = renderer.NewCenterSampling()
	if *samples > 1 {
		strategy = renderer.NewRandomSampling(*samples)
	}

	engine, err := renderer.NewEngine(sceneObj, renderer.Config{
		Width:    *width,
		Height:   height,
		Strategy: strategy,
		Seed:     *seed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := &Game{
		engine:        engine,
		frame:         ebiten.NewImage(*width, height),
		pixelsPerTick: *budget,
	}

	ebiten.SetWindowSize(*width, height)
	ebiten.SetWindowTitle("Raytracer - " + *sceneName)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
