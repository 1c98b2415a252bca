package checker

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-set/v3"
	"github.com/tocin-lang/tocin/ast"
	"github.com/tocin-lang/tocin/diag"
	"github.com/tocin-lang/tocin/internal/log"
	"github.com/tocin-lang/tocin/util"
)

var registryLogger = log.DefaultLogger.With("section", "registry")

// registry holds the name -> type bindings for a compilation unit: built-ins
// (bootstrapped once), user-defined nominal types, aliases, generic
// signatures and class metadata. It is the checker's build-phase state; see
// Checker's doc comment for the build/query-phase split.
type registry struct {
	types         map[string]ast.Type
	aliases       map[string]ast.Type
	typeDefs      map[string]ast.Type
	genericParams map[string][]TypeParameter
	classes       map[string]ClassInfo
	builtinNames  *set.Set[string]
}

var builtinNameList = []string{
	"i8", "i16", "i32", "i64",
	"u8", "u16", "u32", "u64",
	"f32", "f64", "float", "double",
	"bool", "string", "void", "null",
	"int",
}

func newRegistry() *registry {
	r := &registry{
		types:         make(map[string]ast.Type),
		aliases:       make(map[string]ast.Type),
		typeDefs:      make(map[string]ast.Type),
		genericParams: make(map[string][]TypeParameter),
		classes:       make(map[string]ClassInfo),
		builtinNames:  util.SetFromSeq(slices.Values(builtinNameList), len(builtinNameList)),
	}
	r.bootstrap()
	return r
}

// bootstrap registers the canonical built-in names: integer widths, floats,
// bool, string, void and null, plus the int/float width aliases.
func (r *registry) bootstrap() {
	for _, name := range builtinNameList {
		r.types[name] = ast.BasicType{Name: name}
	}
	// int32/int64/float32/float64 are width aliases; "int" and "float" are
	// not aliases but their own canonical basic types (see
	// getIntType/getFloatType), matching the widening unify performs.
	r.aliases["int32"] = ast.BasicType{Name: "i32"}
	r.aliases["int64"] = ast.BasicType{Name: "i64"}
	r.aliases["float32"] = ast.BasicType{Name: "f32"}
	r.aliases["float64"] = ast.BasicType{Name: "f64"}
}

func (r *registry) registerType(pos ast.Positioner, name string, t ast.Type) error {
	if _, ok := r.types[name]; ok {
		message := fmt.Sprintf("type already registered: %s", name)
		if r.builtinNames.Contains(name) {
			message = fmt.Sprintf("cannot shadow built-in type: %s", name)
		}
		registryLogger.Warn("duplicate type registration rejected", "name", name)
		return diag.New(diag.NewRegistration(pos, message, diag.NameError))
	}
	r.types[name] = t
	registryLogger.Debug("registered type", "name", name)
	return nil
}

// registerAlias is idempotent: the last write for a given name wins.
func (r *registry) registerAlias(name string, t ast.Type) {
	r.aliases[name] = t
	registryLogger.Debug("registered alias", "name", name)
}

func (r *registry) registerGenericType(pos ast.Positioner, name string, params []TypeParameter, definition ast.Type) error {
	if _, ok := r.genericParams[name]; ok {
		return diag.New(diag.NewRegistration(pos, fmt.Sprintf("generic type already registered: %s", name), diag.NameError))
	}
	r.genericParams[name] = params
	r.typeDefs[name] = definition
	registryLogger.Debug("registered generic type", "name", name, "arity", len(params))
	return nil
}

func (r *registry) registerClass(pos ast.Positioner, name string, info ClassInfo) error {
	if _, ok := r.classes[name]; ok {
		return diag.New(diag.NewRegistration(pos, fmt.Sprintf("class already registered: %s", name), diag.NameError))
	}
	r.classes[name] = info
	registryLogger.Debug("registered class", "name", name, "superclass", info.Superclass, "fields", len(info.Fields))
	return nil
}

func (r *registry) lookupType(name string) (ast.Type, bool) {
	t, ok := r.types[name]
	return t, ok
}

func (r *registry) resolveAlias(name string) (ast.Type, bool) {
	t, ok := r.aliases[name]
	return t, ok
}

func (r *registry) getTypeParameters(name string) ([]TypeParameter, bool) {
	p, ok := r.genericParams[name]
	return p, ok
}

func (r *registry) getClassInfo(name string) (ClassInfo, bool) {
	c, ok := r.classes[name]
	return c, ok
}

// getTypeDefinition returns the body a generic or alias name was registered
// with, used by circularWalk to follow a Basic name to whatever it is
// defined in terms of, and by generics.go to look up a generic's body for
// instantiation.
func (r *registry) getTypeDefinition(name string) (ast.Type, bool) {
	if t, ok := r.typeDefs[name]; ok {
		return t, true
	}
	if t, ok := r.aliases[name]; ok {
		return t, true
	}
	return nil, false
}

func (r *registry) getIntType() ast.Type    { return ast.BasicType{Name: "int"} }
func (r *registry) getFloatType() ast.Type  { return ast.BasicType{Name: "float"} }
func (r *registry) getBoolType() ast.Type   { return ast.BasicType{Name: "bool"} }
func (r *registry) getStringType() ast.Type { return ast.BasicType{Name: "string"} }
func (r *registry) getVoidType() ast.Type   { return ast.BasicType{Name: "void"} }
func (r *registry) getNullType() ast.Type   { return ast.BasicType{Name: "null"} }
