package shader_test

import (
	"strings"
	"testing"

	"github.com/matjam/shadercache/internal/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberLines(t *testing.T) {
	got := shader.NumberLines("#version 100\n", "a\nb", "c\n")
	want := "     1: #version 100\n" +
		"     2: a\n" +
		"     3: bc\n" +
		"     4: "
	assert.Equal(t, want, got)
}

func TestNumberLines_Empty(t *testing.T) {
	assert.Equal(t, "", shader.NumberLines())
	assert.Equal(t, "     1: ", shader.NumberLines(""))
}

func TestFragmentSources(t *testing.T) {
	req := shader.Requirements{Variant: shader.VariantSolid}
	sources := shader.FragmentSources(req)

	require.Len(t, sources, 3)
	assert.Equal(t, "#version 100\n", sources[0])
	assert.Equal(t, shader.ConfigString(req), sources[1])
	assert.Equal(t, shader.FragmentBody(), sources[2])
}

func TestShaderBodies(t *testing.T) {
	assert.Contains(t, shader.VertexSource(), "attribute vec2 position;")
	assert.Contains(t, shader.VertexSource(), "uniform mat4 proj;")

	body := shader.FragmentBody()
	for _, v := range shader.Variants() {
		assert.Contains(t, body, "#define "+v.String()+" ", "fragment body does not define %s", v)
	}
	for _, name := range []string{"tex", "tex1", "tex2", "alpha", "unicolor"} {
		assert.True(t, strings.Contains(body, " "+name+";"), "uniform %s missing", name)
	}
}
