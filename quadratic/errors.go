// SPDX-License-Identifier: MIT

package quadratic

import (
	"errors"
	"fmt"
)

// ErrInvalidInput indicates a coefficient is NaN or ±Inf.
// Solve never returns it; Coefficients.Validate and input readers do.
var ErrInvalidInput = errors.New("quadratic: coefficient is not a finite number")

// ErrUnknownRootCount indicates a root count name or code that does not
// map to any RootCount.
var ErrUnknownRootCount = errors.New("quadratic: unknown root count")

// quadraticErrorf tags err with the operation that produced it,
// keeping the sentinel reachable through errors.Is.
func quadraticErrorf(tag, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{tag}, args...)...)
}
