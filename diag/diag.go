// Package diag supplies the checker's structured error payload. Rendering a
// Diagnostic into a user-facing message with source context is the driver's
// job; this package only carries the data, the way frontend/ilerr does for
// the teacher.
package diag

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/tocin-lang/tocin/ast"
)

// enableStackInError includes a one-line stack frame in FormatWithCode,
// which is invaluable when a "Circular type dependency" or similar message
// shows up with no further context during development.
const enableStackInError = true

// Code classifies a Diagnostic into the taxonomy of spec §7.
type Code int

const (
	None Code = iota
	ShapeError
	NameError
	ArityError
	ConstraintError
	StructuralError
	CircularError
	OccursError
	IncompatibleError
)

// Diagnostic is the common shape of every error the checker returns.
type Diagnostic interface {
	error
	Code() Code
	ast.Positioner

	withStack([]byte) Diagnostic
	getStack() []byte
}

// New stamps d with the caller's stack trace, matching ilerr.New's pattern of
// capturing provenance at the construction site rather than at render time.
func New[D Diagnostic](d D) Diagnostic {
	return d.withStack(debug.Stack())
}

// FormatWithCode renders a Diagnostic as "(E###) message", optionally
// prefixed with the frame that constructed it.
func FormatWithCode(d Diagnostic) string {
	if enableStackInError && d.getStack() != nil {
		lines := strings.Split(string(d.getStack()), "\n")
		frame := ""
		if len(lines) > 6 {
			frame = strings.TrimSpace(lines[6])
		}
		return fmt.Sprintf("%s: (E%03d) %s", frame, d.Code(), d.Error())
	}
	return fmt.Sprintf("(E%03d) %s", d.Code(), d.Error())
}
