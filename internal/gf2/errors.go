package gf2

import "errors"

// ErrNotInvertible is returned by Invert when the matrix is singular.
var ErrNotInvertible = errors.New("matrix is not invertible")
