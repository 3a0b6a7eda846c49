package game

import (
	"fmt"
	"os"

	cfg "github.com/automoto/cubejump/config"
	"gopkg.in/yaml.v3"
)

// ScriptStep holds a set of actions for a number of frames.
type ScriptStep struct {
	Frames int      `yaml:"frames"`
	Hold   []string `yaml:"hold"`
}

// Script is a recorded input sequence for headless runs.
type Script struct {
	Steps        []ScriptStep `yaml:"steps"`
	QuitWhenDone bool         `yaml:"quit_when_done"`
}

// ScriptedInput replays a Script one frame per Poll. It implements
// systems.InputSource.
type ScriptedInput struct {
	steps        [][cfg.ActionCount]bool
	frames       []int
	quitWhenDone bool

	step  int
	frame int
}

// ParseScript decodes a YAML script and resolves its action names.
func ParseScript(data []byte) (*ScriptedInput, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return NewScriptedInput(script)
}

// LoadScript reads a YAML script from disk.
func LoadScript(path string) (*ScriptedInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

// NewScriptedInput validates a script.
func NewScriptedInput(script Script) (*ScriptedInput, error) {
	in := &ScriptedInput{quitWhenDone: script.QuitWhenDone}
	for i, step := range script.Steps {
		if step.Frames <= 0 {
			return nil, fmt.Errorf("script step %d: frames must be positive, got %d", i, step.Frames)
		}
		var held [cfg.ActionCount]bool
		for _, name := range step.Hold {
			action, err := cfg.ParseAction(name)
			if err != nil {
				return nil, fmt.Errorf("script step %d: %w", i, err)
			}
			held[action] = true
		}
		in.steps = append(in.steps, held)
		in.frames = append(in.frames, step.Frames)
	}
	return in, nil
}

// Poll returns the actions held for the next frame. After the last step it
// holds nothing, or quit when the script asks for it.
func (s *ScriptedInput) Poll() [cfg.ActionCount]bool {
	if s.Done() {
		var held [cfg.ActionCount]bool
		held[cfg.ActionQuit] = s.quitWhenDone
		return held
	}

	held := s.steps[s.step]
	s.frame++
	if s.frame >= s.frames[s.step] {
		s.step++
		s.frame = 0
	}
	return held
}

// Done reports whether every step has been replayed.
func (s *ScriptedInput) Done() bool {
	return s.step >= len(s.steps)
}

// Hold is a convenience for building scripts in code.
func Hold(frames int, actions ...string) ScriptStep {
	return ScriptStep{Frames: frames, Hold: actions}
}
