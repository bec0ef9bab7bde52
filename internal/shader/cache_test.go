package shader_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/shadercache/internal/shader"
	"github.com/matjam/shadercache/internal/shader/mocks"
	"github.com/matjam/shadercache/internal/shader/shadertest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var rgba = shader.Requirements{Variant: shader.VariantRGBA}

func newCache(d shader.Driver, opts ...shader.Option) *shader.Cache {
	opts = append([]shader.Option{shader.WithLogger(log.New(io.Discard))}, opts...)
	return shader.NewCache(d, opts...)
}

func TestCache_Get_MissThenHit(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	first, err := cache.Get(rgba)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 2, d.Compiles)
	assert.Equal(t, 1, d.Links)

	second, err := cache.Get(rgba)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, d.Compiles, "hit must not compile")
	assert.Equal(t, 1, d.Links, "hit must not link")
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Get_BuildsFromGeneratedSources(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	req := shader.Requirements{Variant: shader.VariantYUV2, GreenTint: true}
	p, err := cache.Get(req)
	require.NoError(t, err)

	assert.Equal(t, req, p.Key)
	assert.NotZero(t, p.ID)
	assert.Equal(t, []string{shader.VertexSource()}, d.Sources[shader.StageVertex])
	assert.Equal(t, shader.FragmentSources(req), d.Sources[shader.StageFragment])
}

func TestCache_Get_ResolvesUniforms(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	p, err := cache.Get(rgba)
	require.NoError(t, err)

	// shadertest reports len(name) as the location.
	assert.Equal(t, shader.Uniforms{
		Proj:  4,
		Tex:   [3]int32{3, 4, 4},
		Alpha: 5,
		Color: 8,
	}, p.Uniforms)
}

func TestCache_Get_ReleasesStageObjects(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	_, err := cache.Get(rgba)
	require.NoError(t, err)

	assert.Equal(t, 0, d.LiveShaders())
	assert.Equal(t, 2, d.ShaderDeletes)
	assert.Equal(t, 1, d.LivePrograms())
}

func TestCache_Get_DistinctKeys(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	plain, err := cache.Get(rgba)
	require.NoError(t, err)
	tinted, err := cache.Get(shader.Requirements{Variant: shader.VariantRGBA, GreenTint: true})
	require.NoError(t, err)

	assert.NotSame(t, plain, tinted)
	assert.NotEqual(t, plain.ID, tinted.ID)
	assert.Equal(t, 2, cache.Len())

	again, ok := cache.Lookup(rgba)
	require.True(t, ok)
	assert.Same(t, plain, again)
}

func TestCache_Get_AllRequirements(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	for _, req := range allRequirements() {
		_, err := cache.Get(req)
		require.NoError(t, err)
	}
	assert.Equal(t, 18, cache.Len())
	assert.Equal(t, 18, d.Links)
}

func TestCache_Get_FragmentCompileFailure(t *testing.T) {
	d := shadertest.NewDriver()
	d.FailFragment = "0:12(3): error: syntax error"
	cache := newCache(d)

	p, err := cache.Get(rgba)
	assert.Nil(t, p)
	require.Error(t, err)

	var berr *shader.BuildError
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, shader.StageFragment, berr.Stage)
	assert.Equal(t, "0:12(3): error: syntax error", berr.Log)
	assert.Equal(t, rgba, berr.Req)
	assert.ErrorIs(t, err, shader.ErrCompile)

	assert.Equal(t, 0, cache.Len())
	assert.Equal(t, 0, d.LiveShaders(), "vertex shader leaked")
	assert.Equal(t, 1, d.ShaderDeletes)
	assert.Equal(t, 0, d.Links)
}

func TestCache_Get_VertexCompileFailure(t *testing.T) {
	d := shadertest.NewDriver()
	d.FailVertex = "bad vertex"
	cache := newCache(d)

	_, err := cache.Get(rgba)

	var berr *shader.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, shader.StageVertex, berr.Stage)
	assert.Equal(t, 1, d.Compiles, "fragment must not be compiled after a vertex failure")
	assert.Equal(t, 0, d.LiveShaders())
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Get_LinkFailure(t *testing.T) {
	d := shadertest.NewDriver()
	d.FailLink = "varying mismatch"
	cache := newCache(d)

	_, err := cache.Get(rgba)

	var berr *shader.BuildError
	require.ErrorAs(t, err, &berr)
	assert.Equal(t, shader.StageLink, berr.Stage)
	assert.ErrorIs(t, err, shader.ErrLink)
	assert.NotErrorIs(t, err, shader.ErrCompile)
	assert.Contains(t, err.Error(), "varying mismatch")
	assert.Contains(t, err.Error(), "SHADER_VARIANT_RGBA -green")

	assert.Equal(t, 0, d.LiveShaders())
	assert.Equal(t, 0, d.LivePrograms())
	assert.Equal(t, 0, cache.Len())
}

func TestCache_Get_RetryAfterFailure(t *testing.T) {
	d := shadertest.NewDriver()
	d.FailFragment = "out of memory"
	cache := newCache(d)

	_, err := cache.Get(rgba)
	require.Error(t, err)

	d.FailFragment = ""
	p, err := cache.Get(rgba)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 1, cache.Len())
}

func TestCache_Get_LinkFailureReleaseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDriver(ctrl)
	cache := newCache(d)

	gomock.InOrder(
		d.EXPECT().CompileShader(shader.StageVertex, []string{shader.VertexSource()}).Return(uint32(10), nil),
		d.EXPECT().CompileShader(shader.StageFragment, shader.FragmentSources(rgba)).Return(uint32(11), nil),
		d.EXPECT().LinkProgram(uint32(10), uint32(11), []string{"position", "texcoord"}).
			Return(uint32(0), errors.New("link failed")),
		d.EXPECT().DeleteShader(uint32(11)),
		d.EXPECT().DeleteShader(uint32(10)),
	)

	_, err := cache.Get(rgba)
	assert.ErrorIs(t, err, shader.ErrLink)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_DestroyAll(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	for _, v := range []shader.Variant{shader.VariantRGBA, shader.VariantRGBX, shader.VariantSolid} {
		_, err := cache.Get(shader.Requirements{Variant: v})
		require.NoError(t, err)
	}
	require.Equal(t, 3, cache.Len())

	cache.DestroyAll()

	assert.Equal(t, 3, d.ProgramDeletes)
	assert.Equal(t, 0, d.LivePrograms())
	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.Dump())

	var buf bytes.Buffer
	require.NoError(t, cache.WriteReport(&buf))
	assert.True(t, strings.HasSuffix(buf.String(), "Total: 0 programs.\n"))

	// Rebuilding after a destroy compiles again.
	_, err := cache.Get(rgba)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 4, d.Links)
}

func TestCache_Close(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	_, err := cache.Get(rgba)
	require.NoError(t, err)

	require.NoError(t, cache.Close())
	assert.Equal(t, 1, d.ProgramDeletes)
	assert.Equal(t, 0, cache.Len())
}

func TestCache_DestroyAll_PanicsOnZeroHandle(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	p, err := cache.Get(rgba)
	require.NoError(t, err)
	p.ID = 0

	assert.PanicsWithValue(t, "shader: destroying program without a driver handle", cache.DestroyAll)
	assert.Zero(t, d.ProgramDeletes)
}

func TestCache_Get_RejectsUndeclaredVariant(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	p, err := cache.Get(shader.Requirements{Variant: shader.Variant(42)})
	assert.Nil(t, p)
	assert.ErrorIs(t, err, shader.ErrUnknownVariant)
	assert.ErrorContains(t, err, "Variant(42)")

	var berr *shader.BuildError
	assert.False(t, errors.As(err, &berr))
	assert.Zero(t, d.Compiles)
	assert.Zero(t, cache.Len())

	_, cached := cache.Lookup(shader.Requirements{Variant: shader.Variant(42)})
	assert.False(t, cached)
}

func TestCache_Verbose(t *testing.T) {
	var out bytes.Buffer
	d := shadertest.NewDriver()
	cache := shader.NewCache(d, shader.WithLogger(log.New(&out)), shader.WithVerbose(true))

	_, err := cache.Get(rgba)
	require.NoError(t, err)
	cache.DestroyAll()

	assert.Contains(t, out.String(), "Compiling shader program for: SHADER_VARIANT_RGBA -green")
	assert.Contains(t, out.String(), "Deleting shader program for: SHADER_VARIANT_RGBA -green")
}

func TestCache_Dump(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := shadertest.NewDriver()
	cache := newCache(d, shader.WithClock(clock))

	p, err := cache.Get(rgba)
	require.NoError(t, err)

	clock.Advance(1500 * time.Millisecond)
	records := cache.Dump()
	require.Len(t, records, 1)
	assert.Equal(t, shader.Record{
		ProgramID:   p.ID,
		Age:         1500 * time.Millisecond,
		Description: "SHADER_VARIANT_RGBA -green",
	}, records[0])

	p.MarkUsed(clock.Now())
	clock.Advance(250 * time.Millisecond)
	assert.Equal(t, 250*time.Millisecond, cache.Dump()[0].Age)

	// Dump is read-only.
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, 1, d.Links)
}

func TestCache_Dump_SortedByProgramID(t *testing.T) {
	d := shadertest.NewDriver()
	cache := newCache(d)

	for _, req := range allRequirements() {
		_, err := cache.Get(req)
		require.NoError(t, err)
	}

	records := cache.Dump()
	require.Len(t, records, 18)
	for i := 1; i < len(records); i++ {
		assert.Less(t, records[i-1].ProgramID, records[i].ProgramID)
	}
}

func TestCache_WriteReport(t *testing.T) {
	clock := clockwork.NewFakeClock()
	d := shadertest.NewDriver()
	cache := newCache(d, shader.WithClock(clock))

	p, err := cache.Get(rgba)
	require.NoError(t, err)
	clock.Advance(2 * time.Second)

	var buf bytes.Buffer
	require.NoError(t, cache.WriteReport(&buf))
	report := buf.String()

	assert.True(t, strings.HasPrefix(report, "Vertex shader body:\n"))
	assert.Contains(t, report, shader.VertexSource())
	assert.Contains(t, report, "Fragment shader body:\n")
	assert.Contains(t, report, shader.FragmentBody())
	assert.Contains(t, report, "Cached GLSL programs:\n    id: (used secs ago) description +/-flags\n")
	assert.Contains(t, report, "     3: (2.0) SHADER_VARIANT_RGBA -green\n")
	assert.Equal(t, uint32(3), p.ID)
	assert.True(t, strings.HasSuffix(report, "Total: 1 programs.\n"))
}
