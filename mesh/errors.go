// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"errors"
	"fmt"
)

// ErrTopology is the sentinel wrapped by every invariant-violation and
// algorithm-failure error this package returns, so callers can test for
// it with errors.Is instead of matching message text.
var ErrTopology = errors.New("topology error")

func topoErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrTopology)
}
