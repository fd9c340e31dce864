// Package flatbush implements a static, bulk-loaded packed R-tree over
// axis-aligned rectangles, serialized to and from a compact, self-describing
// binary buffer compatible with the Flatbush format.
//
// A tree is built once from a known number of boxes and never mutated
// afterward:
//
//	b, err := flatbush.NewBuilder(len(boxes))
//	for _, box := range boxes {
//		b.Add(box)
//	}
//	tree, err := b.Finish(flatbush.Hilbert)
//	hits := tree.Search(minX, minY, maxX, maxY)
//
// See the companion kdtree package for indexing points rather than boxes.
package flatbush
