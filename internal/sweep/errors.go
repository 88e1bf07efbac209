package sweep

import "errors"

// ErrUnknownBenchmark is returned when a selected name is not registered.
var ErrUnknownBenchmark = errors.New("unknown benchmark")
