package panel

import (
	"errors"
	"fmt"
)

// ErrMissingElement reports that the panel or trigger element is absent from
// the document.
var ErrMissingElement = errors.New("missing-element")

// Element roles reported by MissingElementError.
const (
	RolePanel   = "panel"
	RoleTrigger = "trigger"
	RoleRoot    = "root"
)

// MissingElementError names the element that could not be resolved.
type MissingElementError struct {
	Role string
	ID   string
}

func (e *MissingElementError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("panel: missing-element: %s", e.Role)
	}
	return fmt.Sprintf("panel: missing-element: %s #%s", e.Role, e.ID)
}

func (e *MissingElementError) Is(target error) bool {
	return target == ErrMissingElement
}
