// Package session owns the single active demo session: the selection
// state machine (select → loading → graph), the layer toggles, and the
// rotating side-panel state. Every transition is synchronous except the
// fixed-delay hop from loading to graph.
package session

import (
	"strings"
	"sync"
	"time"
)

// Stage is the screen the session is on.
type Stage string

const (
	StageSelect  Stage = "select"
	StageLoading Stage = "loading"
	StageGraph   Stage = "graph"
)

// Advisory messages shown on the select screen. Both are informational;
// neither changes the stage.
const (
	MsgUnsupportedScenario = "Wind turbines scenario is currently available. Other scenarios coming soon!"
	MsgEmptySelection      = "Please select a scenario to continue"
)

// LoadingStatus is the status line shown while the graph "generates".
const LoadingStatus = "Initializing turbine sensors A0–A71..."

// DefaultLoadingDelay is how long the loading stage lasts before the
// session lands on the graph screen.
const DefaultLoadingDelay = 2500 * time.Millisecond

// InfoPanelCount is the number of rotating informational panels.
const InfoPanelCount = 3

// PreviewImageCount is the number of rotating preview images.
const PreviewImageCount = 3

// Result reports the outcome of a scenario submission.
type Result struct {
	Stage   Stage  `json:"stage"`
	Message string `json:"message,omitempty"`
}

// Session is the state of the single active user. Safe for concurrent use
// by the HTTP handlers.
type Session struct {
	mu           sync.Mutex
	stage        Stage
	scenario     string
	toggles      []string
	infoIndex    int
	previewIndex int

	loadingDelay time.Duration
	timer        *time.Timer
}

// Option configures a Session.
type Option func(*Session)

// WithLoadingDelay overrides the loading-stage duration.
func WithLoadingDelay(d time.Duration) Option {
	return func(s *Session) { s.loadingDelay = d }
}

// New creates a session on the select screen with every optional layer
// enabled, matching the initial checklist state of the UI.
func New(opts ...Option) *Session {
	s := &Session{
		stage:        StageSelect,
		toggles:      []string{"physics", "statistical", "anomaly"},
		loadingDelay: DefaultLoadingDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stage returns the current stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Scenario returns the accepted scenario text, if any.
func (s *Session) Scenario() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scenario
}

// SubmitScenario validates the chosen scenario text. Only text containing
// "wind" (case-insensitive) starts the loading stage; other non-empty text
// and empty text yield advisory messages and leave the stage unchanged.
// Accepting a scenario schedules the automatic loading → graph transition;
// resubmitting during loading supersedes the previous timer. The graph
// stage is terminal for submissions: they are ignored there, and only
// OpenSettings leads back to select.
func (s *Session) SubmitScenario(text string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage == StageGraph {
		return Result{Stage: s.stage}
	}

	trimmed := strings.TrimSpace(text)
	switch {
	case trimmed == "":
		return Result{Stage: s.stage, Message: MsgEmptySelection}
	case !strings.Contains(strings.ToLower(trimmed), "wind"):
		return Result{Stage: s.stage, Message: MsgUnsupportedScenario}
	}

	s.scenario = trimmed
	s.stage = StageLoading
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.loadingDelay, s.CompleteLoading)
	return Result{Stage: StageLoading}
}

// CompleteLoading moves the session from loading to the graph screen.
// A no-op from any other stage.
func (s *Session) CompleteLoading() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stage == StageLoading {
		s.stage = StageGraph
	}
}

// OpenSettings returns the session to the select screen. This is the only
// way out of the graph stage.
func (s *Session) OpenSettings() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.stage = StageSelect
}

// SetToggles replaces the enabled layer set. Tokens are stored as given;
// the graph builder ignores unknown ones.
func (s *Session) SetToggles(layers []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toggles = append([]string(nil), layers...)
}

// Toggles returns the enabled layer tokens.
func (s *Session) Toggles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.toggles...)
}

// RotateInfo advances the info panel rotation and returns the new index.
func (s *Session) RotateInfo() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infoIndex = (s.infoIndex + 1) % InfoPanelCount
	return s.infoIndex
}

// InfoIndex returns the current info panel index.
func (s *Session) InfoIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoIndex
}

// NextPreview advances the preview image with wraparound.
func (s *Session) NextPreview() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewIndex = (s.previewIndex + 1) % PreviewImageCount
	return s.previewIndex
}

// PrevPreview steps the preview image back with wraparound.
func (s *Session) PrevPreview() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewIndex = (s.previewIndex + PreviewImageCount - 1) % PreviewImageCount
	return s.previewIndex
}

// PreviewIndex returns the current preview image index.
func (s *Session) PreviewIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewIndex
}
