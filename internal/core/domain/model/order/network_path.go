package order

import (
	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

// ErrNetworkPathIsNotConstructed is returned when validating a NetworkPath
// that was not created through NewNetworkPath.
var ErrNetworkPathIsNotConstructed = errs.NewValueIsRequiredError("NetworkPath must be created via NewNetworkPath")

// NetworkPath points at the artwork files of an order on the shop's shared
// storage. An order holds zero or more paths, replaced as a whole set.
type NetworkPath struct {
	name string
	path string

	guard guard.ConstructorGuard
}

// NewNetworkPath creates a named pointer to a file location.
// The path is required; the name defaults to "Principal" when empty.
func NewNetworkPath(name string, path string) (NetworkPath, error) {
	if path == "" {
		return NetworkPath{}, errs.NewValueIsRequiredError("path")
	}
	if name == "" {
		name = "Principal"
	}
	return NetworkPath{
		name:  name,
		path:  path,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Name returns the display name of the path.
func (p NetworkPath) Name() string {
	return p.name
}

// Path returns the file location.
func (p NetworkPath) Path() string {
	return p.path
}

// Validate ensures the NetworkPath was created via NewNetworkPath.
func (p NetworkPath) Validate() error {
	return p.guard.Validate(ErrNetworkPathIsNotConstructed)
}
