// Package emit defines the emission boundary: turning an evaluated plan
// into provider-specific infrastructure code. Emitters consume resolved
// descriptors and cost decisions only; they make no decisions of their own.
package emit

import (
	"io"

	"cloudforge/core/engine"
)

// Emitter produces infrastructure code for an evaluated plan
type Emitter interface {
	// Name identifies the emitter (e.g. "terraform")
	Name() string

	// Emit writes the infrastructure code for the plan
	Emit(w io.Writer, plan *engine.Plan) error
}
