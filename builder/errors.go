package builder

import "errors"

// ErrTooSmall indicates a side length below the default layout's minimum.
var ErrTooSmall = errors.New("builder: grid side too small")

// ErrInvalidDensity indicates a wall density outside [0,1].
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrUnknownLayout indicates a layout name ByName does not know.
var ErrUnknownLayout = errors.New("builder: unknown layout")
