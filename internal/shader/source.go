package shader

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed vertex.glsl
var vertexShaderSource string

//go:embed fragment.glsl
var fragmentShaderSource string

const versionPragma = "#version 100\n"

// VertexSource is shared by every program.
func VertexSource() string {
	return vertexShaderSource
}

// FragmentBody is the fragment source without the version pragma or the
// configuration block.
func FragmentBody() string {
	return fragmentShaderSource
}

// FragmentSources returns the strings handed to the compiler for req, in
// order: version pragma, #define block, body.
func FragmentSources(req Requirements) []string {
	return []string{versionPragma, ConfigString(req), fragmentShaderSource}
}

// NumberLines concatenates sources and prefixes each resulting line with
// its 1-based line number, the way compiler diagnostics count them.
func NumberLines(sources ...string) string {
	var sb strings.Builder
	line := 1
	newLine := true
	for _, src := range sources {
		for {
			i := strings.IndexByte(src, '\n')
			if i < 0 {
				break
			}
			if newLine {
				fmt.Fprintf(&sb, "%6d: ", line)
				line++
			}
			sb.WriteString(src[:i+1])
			newLine = true
			src = src[i+1:]
		}
		if newLine {
			fmt.Fprintf(&sb, "%6d: ", line)
			line++
		}
		newLine = false
		sb.WriteString(src)
	}
	return sb.String()
}
