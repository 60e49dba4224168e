// SPDX-License-Identifier: MIT

package validate

import "errors"

// ErrArguments is returned when Run does not receive exactly three paths.
var ErrArguments = errors.New("validate: expected exactly three paths <A> <B> <C>")
