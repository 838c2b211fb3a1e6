/*
Package sumtree provides a persistent sum-tree over a fixed-length sequence
of values, supporting aggregate queries on arbitrary sub-ranges and lazily
propagated range updates.

Sum-Trees

Sum-trees (usually called segment trees in the algorithms literature) organize
a contiguous sequence of values in a balanced binary partition of the index
range. Every inner node caches the aggregate of its whole range, which makes
range queries cheap: a query touches at most O(log n) nodes, stitching the
answer together from cached aggregates.

This package implements the persistent variant: trees are immutable, and a
range update produces a new tree version while the previous version stays
fully valid and queryable. Versions share every subtree that the update did
not touch, so an update allocates only the O(log n) nodes along the paths to
the modified range. Updates themselves are lazy: a modifier that covers a
node's whole range is recorded at that node and pushed further down only when
a later operation actually visits the children.

The package does not define what “aggregate” or “update” mean. Both are
supplied by the caller as algebra implementations: a Monoid describes how
values combine, and an Applier describes how modifiers compose and act on
values. Sums, minima, assignments and affine transforms are all expressible
this way, as are component-wise combinations of any two such algebras (see
Pair). The algebras have to obey the laws documented on the interfaces; the
tree cannot check them, but it relies on them.

Due to their internal structure sum-trees have performance characteristics
differing from plain slices:

	Operation      |   Sum-Tree      |  Slice
	---------------+-----------------+--------
	Range query    |   O(log n)      |   O(n)
	Range update   |   O(log n)      |   O(n)
	Point access   |   O(log n)      |   O(1)
	Snapshot       |   O(1)          |   O(n)

For use cases with many range operations over large sequences, and especially
when old versions must remain accessible (undo histories, speculative
updates, concurrent readers), sum-trees have stable performance and space
characteristics.

All operations are total: empty, inverted or out-of-bounds ranges degrade to
identity contributions and never fail. Because no node is ever mutated after
construction, any number of goroutines may query the same or different tree
versions without coordination.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package sumtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the sumtree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrInvalidConfig signals an incomplete or inconsistent tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")
