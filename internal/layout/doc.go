// Package layout implements the incremental layout engine of the toolkit.
//
// A [Tree] is an index arena of nodes, each carrying a [Render] participant.
// [Tree.RunLayoutPass] walks the tree top-down: a parent hands each child a
// [BoxClamp] through [Ctx.PerformChildLayout] and receives a [Size] back.
// Results are cached per node in the tree's [Store], so a pass only
// re-measures nodes that were marked dirty or received a different clamp.
//
// Positions are relative to the parent. The coordinate mapper
// ([Tree.MapToParent], [Tree.MapToGlobal] and their inverses) folds cached
// positions and optional per-node affine transforms to move points between
// local, parent and global space.
//
// [Flex] is the row/column container with wrapping, flexible children and
// main/cross axis alignment.
package layout
