package shader

import "time"

// Uniforms holds the uniform locations resolved when the program was
// linked. -1 means the linked program does not use that uniform.
type Uniforms struct {
	Proj  int32    `json:"proj"`
	Tex   [3]int32 `json:"tex"`
	Alpha int32    `json:"alpha"`
	Color int32    `json:"color"`
}

var texUniformNames = [3]string{"tex", "tex1", "tex2"}

// attributeNames are bound to locations 0 and 1 before linking.
var attributeNames = []string{"position", "texcoord"}

// Program is a linked shader program owned by a Cache. Only ID is meant to
// be handed to the driver by callers; the cache deletes it.
type Program struct {
	Key      Requirements
	ID       uint32
	Uniforms Uniforms

	lastUsed time.Time
}

// MarkUsed records that the program was bound for a draw at t.
func (p *Program) MarkUsed(t time.Time) {
	p.lastUsed = t
}

// LastUsed is the time of the last MarkUsed, or the creation time.
func (p *Program) LastUsed() time.Time {
	return p.lastUsed
}

func resolveUniforms(d Driver, program uint32) Uniforms {
	u := Uniforms{
		Proj:  d.UniformLocation(program, "proj"),
		Alpha: d.UniformLocation(program, "alpha"),
		Color: d.UniformLocation(program, "unicolor"),
	}
	for i, name := range texUniformNames {
		u.Tex[i] = d.UniformLocation(program, name)
	}
	return u
}
