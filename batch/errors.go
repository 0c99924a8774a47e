// SPDX-License-Identifier: EPL-2.0

package batch

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid batch config")
	ErrNotDirectory  = errors.New("output path is not a directory")
)
