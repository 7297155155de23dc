package api

// QueryRequest is a free-text question submission.
type QueryRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

// ScenarioRequest is a scenario selection submission.
type ScenarioRequest struct {
	Scenario string `json:"scenario" validate:"max=200"`
}

// TogglesRequest replaces the enabled layer set.
type TogglesRequest struct {
	Layers []string `json:"layers" validate:"max=10,dive,max=50"`
}

// SessionResponse describes the current session state.
type SessionResponse struct {
	Stage         string   `json:"stage"`
	Scenario      string   `json:"scenario,omitempty"`
	Toggles       []string `json:"toggles"`
	LoadingStatus string   `json:"loading_status,omitempty"`
	InfoIndex     int      `json:"info_index"`
	PreviewIndex  int      `json:"preview_index"`
}

// PreviewResponse reports the preview image rotation position.
type PreviewResponse struct {
	Index int `json:"index"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
