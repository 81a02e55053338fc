package sweep

import "errors"

var (
	// ErrSampleCount indicates a grid with fewer than two samples.
	ErrSampleCount = errors.New("sweep: sample count must be >= 2")

	// ErrNoScenarios indicates an empty scenario list.
	ErrNoScenarios = errors.New("sweep: no scenarios")

	// ErrSameField indicates that the swept axis and the scenario field coincide.
	ErrSameField = errors.New("sweep: axis and scenario field must differ")

	// ErrUnknownField indicates a Field outside the known set.
	ErrUnknownField = errors.New("sweep: unknown field")
)
