package shader

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"
)

// Record describes one cached program at the time of a Dump.
type Record struct {
	ProgramID   uint32
	Age         time.Duration
	Description string
}

// Dump lists the cached programs ordered by program id. Ages are measured
// against the cache clock at the time of the call.
func (c *Cache) Dump() []Record {
	now := c.clock.Now()
	records := make([]Record, 0, len(c.programs))
	for _, p := range c.programs {
		records = append(records, Record{
			ProgramID:   p.ID,
			Age:         now.Sub(p.lastUsed),
			Description: Describe(p.Key),
		})
	}
	slices.SortFunc(records, func(a, b Record) int {
		return cmp.Compare(a.ProgramID, b.ProgramID)
	})
	return records
}

var reportBar = strings.Repeat("-", 77)

// WriteReport writes the shader bodies followed by one line per cached
// program and a total.
func (c *Cache) WriteReport(w io.Writer) error {
	records := c.Dump()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Vertex shader body:\n%s\n%s\nFragment shader body:\n%s\n%s\n%s\n",
		reportBar, vertexShaderSource, reportBar, fragmentShaderSource, reportBar)
	sb.WriteString("Cached GLSL programs:\n    id: (used secs ago) description +/-flags\n")
	for _, r := range records {
		sb.WriteString(r.String())
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "Total: %d programs.\n", len(records))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r Record) String() string {
	return fmt.Sprintf("%6d: (%.1f) %s", r.ProgramID, r.Age.Seconds(), r.Description)
}
