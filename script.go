package wrapped

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in a run script.
//
//	key:        press Key (an ebiten key name such as "ArrowDown")
//	swipe:      touch from FromY to ToY
//	click:      click at (X, Y), or at the center of the named Button
//	wait:       idle for Frames frames
//	screenshot: capture the frame as Label
//	quit:       close the window
type ScriptStep struct {
	Action string  `json:"action" yaml:"action"`
	Key    string  `json:"key,omitempty" yaml:"key,omitempty"`
	Button string  `json:"button,omitempty" yaml:"button,omitempty"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	FromY  float64 `json:"fromY,omitempty" yaml:"fromY,omitempty"`
	ToY    float64 `json:"toY,omitempty" yaml:"toY,omitempty"`
	Frames int     `json:"frames,omitempty" yaml:"frames,omitempty"`

	key ebiten.Key
}

// Script is an ordered list of steps.
type Script struct {
	Steps []ScriptStep `json:"steps" yaml:"steps"`
}

// LoadScript reads a YAML (.yaml, .yml) or JSON (.json) run script.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		return nil, fmt.Errorf("wrapped: unsupported script extension %q (want .yaml, .yml or .json)", filepath.Ext(path))
	}
	return ParseScript(data, format)
}

// ParseScript decodes and checks a script. Unknown actions and key names are
// rejected up front so a run never stops halfway on a typo.
func ParseScript(data []byte, format Format) (*Script, error) {
	var s Script
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("parse script: %w", err)
		}
	default:
		return nil, fmt.Errorf("wrapped: unknown script format %q", format)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "key":
			k, ok := parseKey(st.Key)
			if !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown key %q", i, st.Key)
			}
			st.key = k
		case "click":
			if st.Button != "" && !knownButton(st.Button) {
				return nil, fmt.Errorf("parse script: step %d: unknown button %q", i, st.Button)
			}
		case "swipe", "wait", "screenshot", "quit":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &s, nil
}

// parseKey resolves an ebiten key name, ignoring case.
func parseKey(name string) (ebiten.Key, bool) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, true
		}
	}
	return 0, false
}

// ScriptRunner sequences injected input events and screenshots across frames
// for scripted runs and visual checks.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// NewScriptRunner creates a runner positioned at the first step.
func NewScriptRunner(s *Script) *ScriptRunner {
	return &ScriptRunner{steps: s.Steps}
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update before input
// is polled.
func (r *ScriptRunner) step(g *Game) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "key":
		g.input.InjectKey(st.key)
	case "swipe":
		g.input.InjectSwipe(st.FromY, st.ToY)
	case "click":
		x, y := st.X, st.Y
		if st.Button != "" {
			c := g.button(st.Button).Bounds.Center()
			x, y = c.X, c.Y
		}
		g.input.InjectClick(x, y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		g.Screenshot(st.Label)
	case "quit":
		g.quit = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.input.Pending() == 0 {
		r.done = true
	}
}
