package projects

import "errors"

// ErrNotFound indicates the referenced project id does not exist in the store.
var ErrNotFound = errors.New("project not found")
