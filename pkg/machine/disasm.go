package machine

import (
	"fmt"
	"strings"
)

// Disassemble renders a positional listing of the strand. Codons that do not
// decode to an instruction are listed as data; a trailing instruction whose
// parameters run off the strand is marked truncated.
func Disassemble(s *Strand) string {
	var sb strings.Builder
	i := 0
	for i < s.Len() {
		c, _ := s.Get(i)
		info := Decode(c)
		fmt.Fprintf(&sb, "%04d: %s", i, c)

		if info.Kind == KindUnknown {
			fmt.Fprintf(&sb, "  .data %d\n", c.Unsigned())
			i++
			continue
		}

		fmt.Fprintf(&sb, "  %s", info.Kind)
		consumed := 1
		for j := 1; j <= info.Arity; j++ {
			p, err := s.Get(i + j)
			if err != nil {
				sb.WriteString(" ?? (truncated)")
				break
			}
			if info.Signed {
				fmt.Fprintf(&sb, " %s(%+d)", p, p.Signed())
			} else {
				fmt.Fprintf(&sb, " %s(%d)", p, p.Unsigned())
			}
			consumed++
		}
		sb.WriteByte('\n')
		i += consumed
	}
	return sb.String()
}
