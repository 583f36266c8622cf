//go:build !cgo

package javascript

import (
	"context"
	"fmt"

	"github.com/metal3d/cakesort/ordering"
)

// Parse needs the tree-sitter grammar, which requires cgo.
func Parse(ctx context.Context, path string, src []byte) (*ordering.Module, error) {
	return nil, fmt.Errorf("%s: %w", path, ErrUnavailable)
}
