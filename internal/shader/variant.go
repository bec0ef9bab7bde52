package shader

import (
	"fmt"
	"strings"
)

//go:generate stringer -type=Variant -linecomment

// Variant is the texture sampling strategy a fragment shader implements.
// The String form is the symbol the GLSL source switches on, so the name
// table in variant_string.go must cover every constant below.
type Variant uint8

const (
	VariantNone     Variant = iota // SHADER_VARIANT_NONE
	VariantRGBX                    // SHADER_VARIANT_RGBX
	VariantRGBA                    // SHADER_VARIANT_RGBA
	VariantYUV                     // SHADER_VARIANT_Y_U_V
	VariantYUV2                    // SHADER_VARIANT_Y_UV
	VariantYXUXV                   // SHADER_VARIANT_Y_XUXV
	VariantXYUV                    // SHADER_VARIANT_XYUV
	VariantSolid                   // SHADER_VARIANT_SOLID
	VariantExternal                // SHADER_VARIANT_EXTERNAL
)

const variantPrefix = "SHADER_VARIANT_"

// variantCount is derived from the generated name table.
const variantCount = Variant(len(_Variant_index) - 1)

// Variants returns every defined variant in declaration order.
func Variants() []Variant {
	out := make([]Variant, 0, variantCount)
	for v := Variant(0); v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v < variantCount
}

// ShortName is the lower-case form used on the command line and over IPC,
// e.g. "rgba" or "y_u_v".
func (v Variant) ShortName() string {
	return strings.ToLower(strings.TrimPrefix(v.String(), variantPrefix))
}

// ParseVariant accepts either the GLSL symbol (SHADER_VARIANT_RGBA) or the
// short name (rgba), case-insensitively.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	if !strings.HasPrefix(name, variantPrefix) {
		name = variantPrefix + name
	}
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return VariantNone, fmt.Errorf("unknown shader variant %q", s)
}
