package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/noir/pkg/core"
)

func TestSettings_JSON(t *testing.T) {
	t.Run("Missing Keys Keep Defaults", func(t *testing.T) {
		s := core.DefaultSettings()
		require.NoError(t, json.Unmarshal([]byte(`{"apiKey":"sk-1"}`), &s))

		assert.Equal(t, "sk-1", s.APIKey)
		assert.Equal(t, core.DefaultFontSize, s.FontSize)
		assert.Equal(t, core.DefaultQuizPrompt, s.QuizPrompt)
		assert.Nil(t, s.Extra)
	})

	t.Run("Present Keys Win Verbatim", func(t *testing.T) {
		s := core.DefaultSettings()
		require.NoError(t, json.Unmarshal([]byte(`{"fontSize":"xl","fontFamily":"serif","quizPrompt":""}`), &s))

		assert.Equal(t, "xl", s.FontSize)
		assert.Equal(t, "serif", s.FontFamily)
		assert.Empty(t, s.QuizPrompt)
	})

	t.Run("Unknown Keys Round Trip", func(t *testing.T) {
		in := `{"apiKey":"k","fontFamily":"mono","fontSize":"base","quizPrompt":"q","theme":{"dark":true},"zoom":1.5}`
		var s core.Settings
		require.NoError(t, json.Unmarshal([]byte(in), &s))
		require.Len(t, s.Extra, 2)

		out, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, in, string(out))
	})

	t.Run("Known Fields Override Extra", func(t *testing.T) {
		s := core.DefaultSettings()
		s.Extra = map[string]json.RawMessage{"apiKey": json.RawMessage(`"stale"`)}
		s.APIKey = "fresh"

		out, err := json.Marshal(s)
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(out, &m))
		assert.Equal(t, "fresh", m["apiKey"])
	})

	t.Run("Malformed", func(t *testing.T) {
		s := core.DefaultSettings()
		assert.Error(t, json.Unmarshal([]byte(`{"apiKey":`), &s))
	})
}
