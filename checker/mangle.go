package checker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/util"
)

// MangleType produces a deterministic textual encoding of t, in the spirit
// of the Itanium C++ ABI's type mangling: built-in basics get their
// canonical primitive letter (v, b, i, Ss, ...), every other nominal
// component is length-prefixed, and every structural constructor gets its
// own short tag (P, Pu, R, Rm, A<n>_, PA, F...E, I...E). A ClassType and a
// TraitType with the same name produce the same string.
func (c *Checker) MangleType(t ast.Type) string {
	switch tt := t.(type) {
	case ast.BasicType:
		if letter, ok := primitiveLetters[tt.Name]; ok {
			return letter
		}
		return lengthPrefixed(tt.Name)
	case ast.PointerType:
		if tt.Unique {
			return "Pu" + c.MangleType(tt.Pointee)
		}
		return "P" + c.MangleType(tt.Pointee)
	case ast.ReferenceType:
		if tt.Mutable {
			return "Rm" + c.MangleType(tt.Referent)
		}
		return "R" + c.MangleType(tt.Referent)
	case ast.ArrayType:
		if tt.Size > 0 {
			return "A" + strconv.Itoa(tt.Size) + "_" + c.MangleType(tt.Elem)
		}
		return "PA" + c.MangleType(tt.Elem)
	case ast.FunctionType:
		params := slices.Collect(util.MapIter(slices.Values(tt.Params), c.MangleType))
		return "F" + c.MangleType(tt.Return) + strings.Join(params, "") + "E"
	case ast.ClassType:
		return lengthPrefixed(tt.Name)
	case ast.TraitType:
		// A class and a trait sharing a name mangle identically, matching
		// the original's own toMangledName; nominal namespaces are expected
		// to be disjoint upstream of this checker.
		return lengthPrefixed(tt.Name)
	case ast.GenericType:
		args := slices.Collect(util.MapIter(slices.Values(tt.Args), c.MangleType))
		return lengthPrefixed(tt.Constructor) + "I" + strings.Join(args, "") + "E"
	case ast.TypeVariable:
		return "T" + lengthPrefixed(tt.Name)
	default:
		return "X"
	}
}

// primitiveLetters holds the Itanium single-letter (or "Ss" for std::string)
// codes for every built-in name, ported from the original's toMangledName.
// A name with no entry here falls back to lengthPrefixed, matching the
// original's own "user-defined types: length + name" fallback.
var primitiveLetters = map[string]string{
	"void":   "v",
	"bool":   "b",
	"i8":     "a",
	"u8":     "h",
	"i16":    "s",
	"u16":    "t",
	"i32":    "i",
	"u32":    "j",
	"i64":    "l",
	"u64":    "m",
	"int":    "i",
	"f32":    "f",
	"f64":    "d",
	"float":  "f",
	"double": "d",
	"string": "Ss",
}

func lengthPrefixed(name string) string {
	return fmt.Sprintf("%d%s", len(name), name)
}
