package renderer

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/vhiribarren/raytracer-go/pkg/core"
	"github.com/vhiribarren/raytracer-go/pkg/scene"
)

// Config contains the rendering parameters supplied once at engine creation
// and never mutated mid-render.
type Config struct {
	Width      int
	Height     int
	Strategy   SamplingStrategy // nil means center sampling
	Parallel   bool             // render with the worker pool
	NumWorkers int              // 0 = one worker per CPU
	Seed       int64            // base seed for jittered sampling
	Logger     core.Logger      // nil means DefaultLogger
}

// RenderState tracks the engine life cycle
type RenderState int32

const (
	StatePending RenderState = iota
	StateRunning
	StateComplete
	StateCancelled
)

func (s RenderState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Pixel is one progressive rendering result
type Pixel struct {
	X     int
	Y     int
	Color core.Color
}

// Engine schedules the rendering of one scene into one frame buffer. It
// supports a synchronous mode (RenderAll, sequential or parallel) and a
// progressive pull mode (NextPixel). An engine renders once; create a new
// engine for a new render.
//
// Stop may be called from any goroutine. NextPixel and RenderAll are not safe
// for concurrent use with each other or with themselves.
type Engine struct {
	scene     *scene.Scene
	config    Config
	raytracer *Raytracer
	fb        *FrameBuffer
	logger    core.Logger

	state     atomic.Int32
	stopped   atomic.Bool
	nextIndex int // progressive cursor in scan order
	rendered  int
	startTime time.Time
	duration  time.Duration
}

// NewEngine validates the scene and configuration and prepares a render.
// Validation failures surface here, before any pixel work starts.
func NewEngine(sc *scene.Scene, config Config) (*Engine, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid canvas size %dx%d", config.Width, config.Height)
	}
	if config.Strategy == nil {
		config.Strategy = NewCenterSampling()
	}
	if config.Strategy.SampleCount() < 1 {
		return nil, fmt.Errorf("renderer: sampling strategy must trace at least one ray per pixel, got %d",
			config.Strategy.SampleCount())
	}
	if config.Logger == nil {
		config.Logger = &DefaultLogger{}
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	return &Engine{
		scene:     sc,
		config:    config,
		raytracer: NewRaytracer(sc),
		fb:        NewFrameBuffer(config.Width, config.Height),
		logger:    config.Logger,
	}, nil
}

// State returns the current life cycle state
func (e *Engine) State() RenderState {
	return RenderState(e.state.Load())
}

// FrameBuffer returns the render target. In progressive mode it fills in as
// NextPixel is called.
func (e *Engine) FrameBuffer() *FrameBuffer {
	return e.fb
}

// Stop requests cancellation. It is idempotent and safe from any goroutine.
// The render stops at the next pixel boundary; a pixel being computed always
// completes and is written to the buffer.
func (e *Engine) Stop() {
	e.stopped.Store(true)
}

// Stats reports what was rendered so far
func (e *Engine) Stats() RenderStats {
	duration := e.duration
	if e.State() == StateRunning {
		duration = time.Since(e.startTime)
	}
	workers := 1
	if e.config.Parallel {
		workers = poolWorkerCount(e.config.NumWorkers)
	}
	return RenderStats{
		TotalPixels:     e.rendered,
		PrimaryRays:     e.rendered * e.config.Strategy.SampleCount(),
		SamplesPerPixel: e.config.Strategy.SampleCount(),
		Workers:         workers,
		Duration:        duration,
	}
}

// NextPixel renders the next pixel in scan order (left to right, top to
// bottom) and returns it. It returns false once all pixels are rendered or
// once a Stop request takes effect; every call after that keeps returning
// false. The pixel is already written to the frame buffer when it is
// returned.
func (e *Engine) NextPixel() (Pixel, bool) {
	switch e.State() {
	case StateComplete, StateCancelled:
		return Pixel{}, false
	case StatePending:
		e.begin()
	}

	if e.stopped.Load() {
		e.finish(StateCancelled)
		return Pixel{}, false
	}
	if e.nextIndex >= e.config.Width*e.config.Height {
		e.finish(StateComplete)
		return Pixel{}, false
	}

	x := e.nextIndex % e.config.Width
	y := e.nextIndex / e.config.Width
	color := e.renderPixelAt(x, y)
	e.fb.SetColor(x, y, color)
	e.nextIndex++
	e.rendered++
	return Pixel{X: x, Y: y, Color: color}, true
}

// RenderAll renders the whole frame synchronously and returns the buffer
// after every worker has finished writing to it. A Stop request interrupts
// the scan and leaves the remaining pixels black.
func (e *Engine) RenderAll() (*FrameBuffer, RenderStats) {
	if !e.state.CompareAndSwap(int32(StatePending), int32(StateRunning)) {
		return e.fb, e.Stats()
	}
	e.startTime = time.Now()
	e.logger.Printf("Rendering %dx%d pixels (%d samples/pixel, parallel=%v)\n",
		e.config.Width, e.config.Height, e.config.Strategy.SampleCount(), e.config.Parallel)

	if e.config.Parallel {
		e.rendered = e.renderParallel()
	} else {
		e.rendered = e.renderSequential()
	}

	finalState := StateComplete
	if e.stopped.Load() {
		finalState = StateCancelled
	}
	e.finishOwned(finalState)
	return e.fb, e.Stats()
}

func (e *Engine) begin() {
	if e.state.CompareAndSwap(int32(StatePending), int32(StateRunning)) {
		e.startTime = time.Now()
	}
}

func (e *Engine) finish(state RenderState) {
	if e.state.CompareAndSwap(int32(StateRunning), int32(state)) {
		e.finishLog(state)
	}
}

// finishOwned is for paths that already own the Running state
func (e *Engine) finishOwned(state RenderState) {
	e.state.Store(int32(state))
	e.finishLog(state)
}

func (e *Engine) finishLog(state RenderState) {
	e.duration = time.Since(e.startTime)
	e.logger.Printf("Render %s: %d pixels in %v\n", state, e.rendered, e.duration)
}

func (e *Engine) renderSequential() int {
	total := e.config.Width * e.config.Height
	rendered := 0
	for index := 0; index < total; index++ {
		if e.stopped.Load() {
			break
		}
		x := index % e.config.Width
		y := index / e.config.Width
		e.fb.SetColor(x, y, e.renderPixelAt(x, y))
		rendered++
	}
	return rendered
}

func (e *Engine) renderParallel() int {
	pool := NewWorkerPool(e.raytracer, e.fb, e.config, &e.stopped)
	pool.Start()

	taskID := 0
	bandHeight := rowBandHeight(e.config.Height, pool.NumWorkers())
	for yStart := 0; yStart < e.config.Height; yStart += bandHeight {
		yEnd := yStart + bandHeight
		if yEnd > e.config.Height {
			yEnd = e.config.Height
		}
		pool.SubmitTask(RowBandTask{TaskID: taskID, YStart: yStart, YEnd: yEnd})
		taskID++
	}

	rendered := 0
	pool.Close()
	for result := range pool.Results() {
		rendered += result.Pixels
	}
	return rendered
}

// renderPixelAt shades one pixel with a deterministic per-pixel rng, so the
// same pixel produces the same color whichever goroutine or mode renders it.
func (e *Engine) renderPixelAt(x, y int) core.Color {
	rng := rand.New(rand.NewSource(e.config.Seed + int64(y*e.config.Width+x)))
	return e.raytracer.RenderPixel(x, y, e.config.Width, e.config.Height, e.config.Strategy, rng)
}
