package shader

import "fmt"

// Requirements fully determines the source text of a shader program and is
// the cache key. It is compared field by field; keep it comparable.
type Requirements struct {
	Variant   Variant `json:"variant"`
	GreenTint bool    `json:"green_tint"`
}

// Describe renders req as "<VARIANT> +green" or "<VARIANT> -green".
func Describe(req Requirements) string {
	tint := '-'
	if req.GreenTint {
		tint = '+'
	}
	return fmt.Sprintf("%s %cgreen", req.Variant, tint)
}

func (req Requirements) String() string {
	return Describe(req)
}

// ConfigString is the #define block placed between the version pragma and
// the fragment body.
func ConfigString(req Requirements) string {
	return fmt.Sprintf("#define DEF_GREEN_TINT %t\n#define DEF_VARIANT %s\n",
		req.GreenTint, req.Variant)
}
