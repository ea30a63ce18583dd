package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vhiribarren/raytracer-go/pkg/renderer"
	"github.com/vhiribarren/raytracer-go/pkg/scene"
)

// Server streams progressive renders to browsers over SSE
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene name (e.g., "showcase")
	Width   int    `json:"width"`   // Image width; height follows the camera ratio
	Samples int    `json:"samples"` // Jittered samples per pixel; 1 = center sampling
	Seed    int64  `json:"seed"`    // Seed for jittered sampling
}

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PixelsDone  int    `json:"pixelsDone"`
	TotalPixels int    `json:"totalPixels"`
	RowsDone    int    `json:"rowsDone"`
	TotalRows   int    `json:"totalRows"`
	ImageData   string `json:"imageData"` // Base64 encoded PNG
	IsComplete  bool   `json:"isComplete"`
	ElapsedMs   int64  `json:"elapsedMs"`
}

// Start starts the web server
func (s *Server) Start() error {
	// Serve static files
	http.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	http.HandleFunc("/api/render", s.handleRender)
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/api/scenes", s.handleScenes)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the scene names the render endpoint accepts
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": SceneNames()})
}

// handleRender renders a scene progressively, streaming one buffer snapshot
// per completed row as SSE events. Closing the connection cancels the render.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj := CreateScene(req.Scene)
	if sceneObj == nil {
		s.sendSSEError(w, "Unknown scene: "+req.Scene)
		return
	}

	height := int(math.Round(float64(req.Width) / sceneObj.Camera.SizeRatio()))
	config := renderer.Config{
		Width:    req.Width,
		Height:   height,
		Strategy: samplingStrategy(req.Samples),
		Seed:     req.Seed,
		Logger:   &renderer.SilentLogger{},
	}

	engine, err := renderer.NewEngine(sceneObj, config)
	if err != nil {
		s.sendSSEError(w, fmt.Sprintf("Invalid scene: %v", err))
		return
	}

	// Cancel the render when the client disconnects
	ctx := r.Context()
	go func() {
		<-ctx.Done()
		engine.Stop()
	}()

	startTime := time.Now()
	currentRow := 0
	pixelsDone := 0
	for {
		pixel, ok := engine.NextPixel()
		if !ok {
			break
		}
		pixelsDone++
		if pixel.Y == currentRow {
			continue
		}
		// A row just completed, stream a snapshot of the buffer
		currentRow = pixel.Y
		if err := s.sendSnapshot(w, engine, pixelsDone, currentRow, false, startTime); err != nil {
			engine.Stop()
			return
		}
	}

	if engine.State() == renderer.StateCancelled {
		return
	}
	if err := s.sendSnapshot(w, engine, pixelsDone, height, true, startTime); err != nil {
		return
	}
	s.sendSSEEvent(w, "complete", "Rendering completed")
}

// sendSnapshot encodes the current frame buffer and streams it as a progress event
func (s *Server) sendSnapshot(w http.ResponseWriter, engine *renderer.Engine, pixelsDone, rowsDone int, complete bool, startTime time.Time) error {
	fb := engine.FrameBuffer()
	imageData, err := s.bufferToBase64PNG(fb)
	if err != nil {
		return err
	}
	return s.sendSSEUpdate(w, ProgressUpdate{
		PixelsDone:  pixelsDone,
		TotalPixels: fb.Width() * fb.Height(),
		RowsDone:    rowsDone,
		TotalRows:   fb.Height(),
		ImageData:   imageData,
		IsComplete:  complete,
		ElapsedMs:   time.Since(startTime).Milliseconds(),
	})
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	req := &RenderRequest{}

	if sceneName := r.URL.Query().Get("scene"); sceneName != "" {
		req.Scene = sceneName
	} else {
		req.Scene = "showcase"
	}

	var err error
	if req.Width, err = parseIntParam(r.URL.Query(), "width", 400, 20, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(r.URL.Query(), "samples", 1, 1, 100); err != nil {
		return nil, err
	}
	var seed int
	if seed, err = parseIntParam(r.URL.Query(), "seed", 0, 0, 1<<30); err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func samplingStrategy(samples int) renderer.SamplingStrategy {
	if samples <= 1 {
		return renderer.NewCenterSampling()
	}
	return renderer.NewRandomSampling(samples)
}

// SceneNames returns the scene names accepted by CreateScene
func SceneNames() []string {
	return []string{"showcase", "spotlit"}
}

// CreateScene creates a scene based on the scene name
func CreateScene(sceneName string) *scene.Scene {
	switch sceneName {
	case "showcase":
		return scene.NewShowcaseScene()
	case "spotlit":
		return scene.NewSpotlitScene()
	default:
		return nil
	}
}

// bufferToBase64PNG converts the frame buffer to base64-encoded PNG
func (s *Server) bufferToBase64PNG(fb *renderer.FrameBuffer) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fb.ToImage()); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// sendSSEUpdate sends a progress update via SSE
func (s *Server) sendSSEUpdate(w http.ResponseWriter, update ProgressUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(w, "progress", string(data))
}

// sendSSEError sends an error via SSE
func (s *Server) sendSSEError(w http.ResponseWriter, message string) error {
	return s.sendSSEEvent(w, "error", message)
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, event, data string) error {
	if flusher, ok := w.(http.Flusher); ok {
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
		return nil
	}
	return fmt.Errorf("streaming not supported")
}
