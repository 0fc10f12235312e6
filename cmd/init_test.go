package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()

	origCfgPath := cfgPath
	cfgPath = dir
	t.Cleanup(func() {
		cfgPath = origCfgPath
	})

	out := &bytes.Buffer{}
	initCmd.SetOut(out)
	initCmd.SetErr(out)

	require.NoError(t, initCmd.RunE(initCmd, nil))

	written, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "max_args")

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Nil(t, cfg.Validate())
}
