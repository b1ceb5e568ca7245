package rank

import "errors"

// ErrEmptyGraph is returned when an estimator is given a graph with no nodes.
var ErrEmptyGraph = errors.New("graph has no nodes")

// ErrBadDamping is returned when the damping factor is outside its valid range.
var ErrBadDamping = errors.New("damping factor out of range")

// ErrBadSamples is returned when the sample count is not a positive integer.
var ErrBadSamples = errors.New("sample count must be positive")

// ErrBadTolerance is returned when the convergence tolerance is not positive.
var ErrBadTolerance = errors.New("tolerance must be positive")

// ErrBadIterationCap is returned when the iteration cap is not positive.
var ErrBadIterationCap = errors.New("iteration cap must be positive")

// ErrNoConvergence is returned when the iterative estimator exhausts its
// iteration cap before every node settles within tolerance.
var ErrNoConvergence = errors.New("no convergence")
