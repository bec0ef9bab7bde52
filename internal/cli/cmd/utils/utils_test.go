package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matjam/shadercache"
	"github.com/matjam/shadercache/internal/cli/cmd/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, "", utils.CanonicalPath(""))
	assert.Equal(t, "/home/tester", utils.CanonicalPath("~"))
	assert.Equal(t, "/home/tester/.local/share", utils.CanonicalPath("~/.local/share"))
	assert.Equal(t, "/var/run/x.sock", utils.CanonicalPath("/var/run/x.sock"))
	assert.Equal(t, "~other/x", utils.CanonicalPath("~other/x"))
}

func TestSocketPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Cleanup(func() { viper.Set("socket", "") })

	viper.Set("socket", "")
	assert.Equal(t, "/run/user/1000/shadercache.sock", utils.SocketPath())
	assert.Equal(t, "/run/user/1000/shadercache.pid", utils.PidFilePath())

	viper.Set("socket", "~/sc.sock")
	assert.Equal(t, "/home/tester/sc.sock", utils.SocketPath())
	assert.Equal(t, "/home/tester/sc.pid", utils.PidFilePath())
}

func TestInstallDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := utils.InstallDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "shadercache", "shadercache.toml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, shadercache.DefaultConfig, string(data))

	again, err := utils.InstallDefaultConfig()
	assert.Error(t, err)
	assert.Equal(t, path, again)
}
