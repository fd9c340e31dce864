// Package kdtree implements a static, bulk-loaded packed KD-tree over 2D
// points, serialized to and from a compact, self-describing binary buffer.
//
// A tree is built once from a known number of points and never mutated
// afterward:
//
//	b, err := kdtree.NewBuilder(len(points))
//	for _, p := range points {
//		b.Add(p.X, p.Y)
//	}
//	tree, err := b.Finish()
//	hits := tree.Range(minX, minY, maxX, maxY)
//
// See the companion flatbush package for indexing rectangles rather than
// points.
package kdtree
