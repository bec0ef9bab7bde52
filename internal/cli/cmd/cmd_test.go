package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matjam/shadercache/internal/cli/cmd"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestVariantsCmd(t *testing.T) {
	out, err := execute(t, cmd.NewVariantsCmd())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "none      SHADER_VARIANT_NONE -green | SHADER_VARIANT_NONE +green", lines[0])
	assert.Contains(t, out, "y_xuxv    SHADER_VARIANT_Y_XUXV -green | SHADER_VARIANT_Y_XUXV +green")
}

func TestSourceCmd_Fragment(t *testing.T) {
	out, err := execute(t, cmd.NewSourceCmd(), "--variant", "rgbx", "--green")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, "     1: #version 100", lines[0])
	assert.Equal(t, "     2: #define DEF_GREEN_TINT true", lines[1])
	assert.Equal(t, "     3: #define DEF_VARIANT SHADER_VARIANT_RGBX", lines[2])
}

func TestSourceCmd_Vertex(t *testing.T) {
	out, err := execute(t, cmd.NewSourceCmd(), "--vertex")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "     1: "))
	assert.NotContains(t, out, "DEF_VARIANT")
}

func TestSourceCmd_UnknownVariant(t *testing.T) {
	_, err := execute(t, cmd.NewSourceCmd(), "--variant", "bgra")
	assert.EqualError(t, err, `unknown shader variant "bgra"`)
}

func TestGenManCmd(t *testing.T) {
	root := &cobra.Command{Use: "shadercache"}
	root.AddCommand(cmd.NewVariantsCmd())
	gen := cmd.NewGenManCmd(root)
	root.AddCommand(gen)

	dir := filepath.Join(t.TempDir(), "man1")
	_, err := execute(t, root, "genman", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "shadercache.1"))
	assert.FileExists(t, filepath.Join(dir, "shadercache-variants.1"))
	assert.NoFileExists(t, filepath.Join(dir, "shadercache-genman.1"), "hidden commands get no page")

	page, err := os.ReadFile(filepath.Join(dir, "shadercache.1"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "SHADERCACHE")
	assert.Contains(t, string(page), "shadercache manual")
}
