// internal/core/ports/errors.go
package ports

import "errors"

// ErrNotFound is returned by repositories when a tenant-scoped lookup
// matches no live row.
var ErrNotFound = errors.New("not found")
