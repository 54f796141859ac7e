package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDdx(t *testing.T) {
	t.Run("label with colon", func(t *testing.T) {
		ddx, err := parseDdx([]string{"Dolor: mecánico:40", "Bursitis subacromial:25"})
		require.NoError(t, err)
		require.Len(t, ddx, 2)
		assert.Equal(t, "Dolor: mecánico", ddx[0].Label)
		assert.Equal(t, 40.0, ddx[0].Probability)
		assert.Equal(t, "Bursitis subacromial", ddx[1].Label)
	})

	t.Run("missing probability", func(t *testing.T) {
		_, err := parseDdx([]string{"Tendinopatía"})
		assert.Error(t, err)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := parseDdx([]string{"Tendinopatía:alta"})
		assert.Error(t, err)
	})
}

func TestBlueprintCmd(t *testing.T) {
	cmd := blueprintCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--region", "Hombro derecho", "--ddx", "Tendinopatía del supraespinoso:55"})

	require.NoError(t, cmd.Execute())

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Contains(t, decoded, "blueprint")
	assert.Contains(t, decoded, "scales")
}

func TestFlagsCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"q31_fiebre":"Sí","q53_compromiso":9}`), 0o600))

	cmd := flagsCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--answers", path})

	require.NoError(t, cmd.Execute())

	var decoded struct {
		Flags   []string `json:"flags"`
		RedFlag bool     `json:"red_flag"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, []string{"RED_FLAG"}, decoded.Flags)
	assert.True(t, decoded.RedFlag)
}

func TestFlagsCmd_RequiresAnswers(t *testing.T) {
	cmd := flagsCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	assert.Error(t, cmd.Execute())
}
