package core

import "encoding/json"

const (
	DefaultFontSize   = "base"
	DefaultFontFamily = "mono"
)

// DefaultQuizPrompt is stored as configuration only; nothing in noir sends it anywhere.
const DefaultQuizPrompt = `You are an AI that transforms raw daily notes into active recall questions in the style of Anki flashcards.
Rules:
- Output questions and answers in separate sections (in order 1, 2, 3...) so that answers can't be seen directly when self quizzing.
- Extract key concepts, people, places, dates, numbers, cause/effect, or definitions from the notes.
- Phrase each as a clear, focused recall question (avoid yes/no, avoid giving away context in the question).
- Use formats like: "What...", "Who...", "When...", "Where...", "Why...", "How..."
- Keep each question short, unambiguous, and memory-focused.
- Output as a simple bulleted list.`

// Settings is the user configuration document.
// Keys noir does not know about are kept in Extra and written back on save.
type Settings struct {
	APIKey     string `json:"apiKey" yaml:"apiKey"`
	QuizPrompt string `json:"quizPrompt" yaml:"quizPrompt"`
	FontSize   string `json:"fontSize" yaml:"fontSize"`
	FontFamily string `json:"fontFamily" yaml:"fontFamily"`

	Extra map[string]json.RawMessage `json:"-" yaml:"-"`
}

var knownSettingsKeys = []string{"apiKey", "quizPrompt", "fontSize", "fontFamily"}

// DefaultSettings returns the settings used when no document exists.
func DefaultSettings() Settings {
	return Settings{
		QuizPrompt: DefaultQuizPrompt,
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
	}
}

// MarshalJSON merges Extra with the known fields. Known fields win.
func (s Settings) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(s.Extra)+len(knownSettingsKeys))
	for k, v := range s.Extra {
		out[k] = v
	}
	out["apiKey"] = s.APIKey
	out["quizPrompt"] = s.QuizPrompt
	out["fontSize"] = s.FontSize
	out["fontFamily"] = s.FontFamily
	return json.Marshal(out)
}

// UnmarshalJSON decodes on top of the receiver, so fields absent from data
// keep their current values. Unknown keys land in Extra.
func (s *Settings) UnmarshalJSON(data []byte) error {
	type plain Settings
	p := plain(*s)
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, k := range knownSettingsKeys {
		delete(raw, k)
	}
	p.Extra = nil
	if len(raw) > 0 {
		p.Extra = raw
	}

	*s = Settings(p)
	return nil
}
