// Copyright 2024 The flatbush (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flatbush

import "golang.org/x/exp/constraints"

// Float is the set of element types a Tree's buffer may be built
// over. Coordinates, and both kinds of reference, share this type;
// references must be exactly representable as integers in it — for
// float64 that holds up to 2^53.
type Float interface {
	constraints.Float
}
