// SPDX-License-Identifier: MIT

package generate

import "errors"

// ErrTileSize is returned when the tile size does not evenly split the rows:
// ts must satisfy 0 < ts <= rows and rows % ts == 0.
var ErrTileSize = errors.New("generate: tile size must divide the row count")
