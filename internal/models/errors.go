package models

import "errors"

// ErrNotFound is wrapped by every lookup that finds no matching active row
var ErrNotFound = errors.New("not found")
