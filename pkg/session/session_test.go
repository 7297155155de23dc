package session

import (
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	s := New()

	if got := s.Stage(); got != StageSelect {
		t.Errorf("initial stage = %s, want select", got)
	}
	if got := s.Scenario(); got != "" {
		t.Errorf("initial scenario = %q, want empty", got)
	}

	toggles := s.Toggles()
	if len(toggles) != 3 {
		t.Fatalf("initial toggles = %v, want all three optional layers", toggles)
	}
	want := map[string]bool{"physics": true, "statistical": true, "anomaly": true}
	for _, l := range toggles {
		if !want[l] {
			t.Errorf("unexpected initial toggle %q", l)
		}
	}

	if got := s.InfoIndex(); got != 0 {
		t.Errorf("initial info index = %d, want 0", got)
	}
	if got := s.PreviewIndex(); got != 0 {
		t.Errorf("initial preview index = %d, want 0", got)
	}
}

func TestSubmitScenario(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantStage Stage
		wantMsg   string
	}{
		{"empty", "", StageSelect, MsgEmptySelection},
		{"whitespace only", "   \t", StageSelect, MsgEmptySelection},
		{"unsupported scenario", "Solar farm inverter faults", StageSelect, MsgUnsupportedScenario},
		{"wind chip label", "Wind turbines: main-bearing failure prediction", StageLoading, ""},
		{"wind embedded in free text", "my offshore WIND fleet", StageLoading, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(WithLoadingDelay(time.Hour))
			result := s.SubmitScenario(tt.text)
			if result.Stage != tt.wantStage {
				t.Errorf("result stage = %s, want %s", result.Stage, tt.wantStage)
			}
			if result.Message != tt.wantMsg {
				t.Errorf("result message = %q, want %q", result.Message, tt.wantMsg)
			}
			if got := s.Stage(); got != tt.wantStage {
				t.Errorf("session stage = %s, want %s", got, tt.wantStage)
			}
		})
	}
}

func TestSubmitScenarioTrimsAndStores(t *testing.T) {
	s := New(WithLoadingDelay(time.Hour))
	s.SubmitScenario("  Wind turbines  ")
	if got := s.Scenario(); got != "Wind turbines" {
		t.Errorf("scenario = %q, want trimmed text", got)
	}
}

func TestLoadingCompletesAfterDelay(t *testing.T) {
	s := New(WithLoadingDelay(10 * time.Millisecond))
	s.SubmitScenario("wind")

	if got := s.Stage(); got != StageLoading {
		t.Fatalf("stage = %s, want loading", got)
	}

	deadline := time.Now().Add(2 * time.Second)
	for s.Stage() != StageGraph {
		if time.Now().After(deadline) {
			t.Fatal("session never reached the graph stage")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestResubmitSupersedesTimer(t *testing.T) {
	s := New(WithLoadingDelay(20 * time.Millisecond))
	s.SubmitScenario("wind")
	s.SubmitScenario("wind again")

	deadline := time.Now().Add(2 * time.Second)
	for s.Stage() != StageGraph {
		if time.Now().After(deadline) {
			t.Fatal("session never reached the graph stage after resubmit")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := s.Scenario(); got != "wind again" {
		t.Errorf("scenario = %q, want the second submission", got)
	}
}

func TestSubmitScenarioIgnoredOnGraphStage(t *testing.T) {
	s := New(WithLoadingDelay(time.Hour))
	s.SubmitScenario("wind")
	s.CompleteLoading()
	if got := s.Stage(); got != StageGraph {
		t.Fatalf("stage = %s, want graph", got)
	}

	// The graph stage is terminal for submissions; only OpenSettings
	// leads back to select.
	result := s.SubmitScenario("wind again")
	if result.Stage != StageGraph {
		t.Errorf("result stage = %s, want graph", result.Stage)
	}
	if result.Message != "" {
		t.Errorf("result message = %q, want empty", result.Message)
	}
	if got := s.Stage(); got != StageGraph {
		t.Errorf("session stage = %s, want graph", got)
	}
	if got := s.Scenario(); got != "wind" {
		t.Errorf("scenario = %q, want the original submission", got)
	}

	s.OpenSettings()
	if result := s.SubmitScenario("wind again"); result.Stage != StageLoading {
		t.Errorf("post-settings submission stage = %s, want loading", result.Stage)
	}
}

func TestCompleteLoadingOnlyFromLoading(t *testing.T) {
	s := New()
	s.CompleteLoading()
	if got := s.Stage(); got != StageSelect {
		t.Errorf("CompleteLoading from select moved stage to %s", got)
	}

	s.SubmitScenario("wind")
	s.CompleteLoading()
	if got := s.Stage(); got != StageGraph {
		t.Errorf("CompleteLoading from loading left stage at %s", got)
	}

	s.CompleteLoading()
	if got := s.Stage(); got != StageGraph {
		t.Errorf("repeated CompleteLoading moved stage to %s", got)
	}
}

func TestOpenSettingsReturnsToSelect(t *testing.T) {
	s := New(WithLoadingDelay(10 * time.Millisecond))
	s.SubmitScenario("wind")
	s.OpenSettings()

	if got := s.Stage(); got != StageSelect {
		t.Fatalf("stage after OpenSettings = %s, want select", got)
	}

	// The pending loading timer was cancelled, so the stage stays put.
	time.Sleep(50 * time.Millisecond)
	if got := s.Stage(); got != StageSelect {
		t.Errorf("cancelled loading timer still fired, stage = %s", got)
	}
}

func TestTogglesCopy(t *testing.T) {
	s := New()

	in := []string{"physics"}
	s.SetToggles(in)
	in[0] = "mutated"
	if got := s.Toggles(); got[0] != "physics" {
		t.Error("SetToggles aliased the caller's slice")
	}

	out := s.Toggles()
	out[0] = "mutated"
	if got := s.Toggles(); got[0] != "physics" {
		t.Error("Toggles returned an aliased slice")
	}
}

func TestRotateInfoWrapsAround(t *testing.T) {
	s := New()
	want := []int{1, 2, 0, 1, 2, 0}
	for i, expected := range want {
		if got := s.RotateInfo(); got != expected {
			t.Fatalf("rotation %d = %d, want %d", i, got, expected)
		}
	}
}

func TestPreviewWrapsBothWays(t *testing.T) {
	s := New()

	if got := s.PrevPreview(); got != PreviewImageCount-1 {
		t.Errorf("PrevPreview from 0 = %d, want %d", got, PreviewImageCount-1)
	}
	if got := s.NextPreview(); got != 0 {
		t.Errorf("NextPreview back = %d, want 0", got)
	}
	for i := 0; i < PreviewImageCount; i++ {
		s.NextPreview()
	}
	if got := s.PreviewIndex(); got != 0 {
		t.Errorf("full forward cycle ended at %d, want 0", got)
	}
}

func TestScenarios(t *testing.T) {
	chips := Scenarios()
	if len(chips) != 4 {
		t.Fatalf("len(Scenarios()) = %d, want 4", len(chips))
	}
	for _, sc := range chips {
		if sc.Key == "" || sc.Label == "" {
			t.Errorf("scenario %+v has empty fields", sc)
		}
	}

	if got, ok := ScenarioLabel(chips[0].Key); !ok || got != chips[0].Label {
		t.Errorf("ScenarioLabel(%q) = %q, %v, want %q", chips[0].Key, got, ok, chips[0].Label)
	}
	if got, ok := ScenarioLabel("nope"); ok || got != "" {
		t.Errorf("ScenarioLabel of unknown key = %q, %v, want empty, false", got, ok)
	}
}

func TestInfoPanels(t *testing.T) {
	panels := InfoPanels()
	if len(panels) != InfoPanelCount {
		t.Fatalf("len(InfoPanels()) = %d, want %d", len(panels), InfoPanelCount)
	}
	for i, p := range panels {
		if p.Title == "" {
			t.Errorf("panel %d has no title", i)
		}
	}

	if got := InfoPanelAt(0).Title; got != panels[0].Title {
		t.Errorf("InfoPanelAt(0) = %q, want %q", got, panels[0].Title)
	}
	if got := InfoPanelAt(InfoPanelCount).Title; got != panels[0].Title {
		t.Errorf("InfoPanelAt wraps to %q, want %q", got, panels[0].Title)
	}
	if got := InfoPanelAt(-1).Title; got != panels[InfoPanelCount-1].Title {
		t.Errorf("InfoPanelAt(-1) = %q, want last panel", got)
	}
}
