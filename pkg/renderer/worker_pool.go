package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// RowBandTask is a contiguous band of rows for one worker to render. Bands
// never overlap, so workers write disjoint frame buffer rows.
type RowBandTask struct {
	TaskID int
	YStart int // inclusive
	YEnd   int // exclusive
}

// RowBandResult reports a finished (or interrupted) band
type RowBandResult struct {
	TaskID int
	Pixels int // pixels actually rendered before any stop request
}

// WorkerPool renders row bands in parallel into a shared frame buffer
type WorkerPool struct {
	taskQueue   chan RowBandTask
	resultQueue chan RowBandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker renders row band tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	fb          *FrameBuffer
	config      Config
	stopped     *atomic.Bool
	taskQueue   chan RowBandTask
	resultQueue chan RowBandResult
}

func poolWorkerCount(numWorkers int) int {
	if numWorkers <= 0 {
		return runtime.NumCPU()
	}
	return numWorkers
}

// rowBandHeight splits the image so each worker gets several bands, which
// keeps the pool busy when bands finish at different speeds
func rowBandHeight(height, numWorkers int) int {
	bands := numWorkers * 4
	bandHeight := height / bands
	if bandHeight < 1 {
		bandHeight = 1
	}
	return bandHeight
}

// NewWorkerPool creates a pool of workers sharing one raytracer and one
// frame buffer. The stopped flag is polled at every pixel boundary.
func NewWorkerPool(raytracer *Raytracer, fb *FrameBuffer, config Config, stopped *atomic.Bool) *WorkerPool {
	numWorkers := poolWorkerCount(config.NumWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan RowBandTask, config.Height),
		resultQueue: make(chan RowBandResult, config.Height),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			raytracer:   raytracer,
			fb:          fb,
			config:      config,
			stopped:     stopped,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// SubmitTask queues a row band for rendering
func (wp *WorkerPool) SubmitTask(task RowBandTask) {
	wp.taskQueue <- task
}

// Close signals that no more tasks will come. The result channel closes once
// every submitted band has finished, so ranging over Results after Close is
// the join point for the whole pool.
func (wp *WorkerPool) Close() {
	close(wp.taskQueue)
	go func() {
		wp.wg.Wait()
		close(wp.resultQueue)
	}()
}

// Results returns the channel of finished bands
func (wp *WorkerPool) Results() <-chan RowBandResult {
	return wp.resultQueue
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		pixels := 0
		for y := task.YStart; y < task.YEnd && !w.stopped.Load(); y++ {
			for x := 0; x < w.config.Width; x++ {
				if w.stopped.Load() {
					break
				}
				rng := rand.New(rand.NewSource(w.config.Seed + int64(y*w.config.Width+x)))
				color := w.raytracer.RenderPixel(x, y, w.config.Width, w.config.Height, w.config.Strategy, rng)
				w.fb.SetColor(x, y, color)
				pixels++
			}
		}
		w.resultQueue <- RowBandResult{TaskID: task.TaskID, Pixels: pixels}
	}
}
