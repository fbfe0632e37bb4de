package bitpack

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// GoString prints the type and the container in hex. A '*' marks the end of
// the container holding the first element: Packed[uint32,uint8](*41424344)
// for MostSignificantFirst, Packed[uint32,uint8](41424344*) otherwise.
func (p Packed[W, E]) GoString() string {
	hex := fmt.Sprintf("%0*X", 2*bytesOf[W](), uint64(p.container))
	if p.direction == MostSignificantFirst {
		hex = "*" + hex
	} else {
		hex = hex + "*"
	}
	return fmt.Sprintf("Packed[%T,%T](%s)", W(0), E(0), hex)
}

// String prints the elements in index order as uppercase hex: [40, 41, 42, 43].
func (p Packed[W, E]) String() string {
	return formatElements(p.Elements())
}

func formatElements[E constraints.Unsigned](elements []E) string {
	var b strings.Builder
	b.WriteString("[")
	for n, e := range elements {
		if n != 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%X", uint64(e))
	}
	b.WriteString("]")
	return b.String()
}
