package util

import (
	"fmt"
	"go/ast"
	"strconv"
)

// MangledIdentFrom returns a deterministic string resulting from pos and name, which is also a valid Go identifier
//
// It is useful when creating intermediary identifiers to be used in codegen/desugaring,
// because if we are not careful and use arbitrary strings, we can end up with naming conflicts.
//
// Therefore, it serves 2 scenarios:
//   - Repeatedly generating names from an ast.Node that we plan to reuse (so we need determinism)
//   - Generating several names from one ast.Node, which differ from each other through the name argument, and
//     differ from the names of a node at other positions
func MangledIdentFrom(node ast.Node, name string) string {
	start := strconv.Itoa(int(node.Pos()))
	end := strconv.Itoa(int(node.End()))
	return fmt.Sprintf("tocin_%v_at_%v_%v", name, start, end)
}
