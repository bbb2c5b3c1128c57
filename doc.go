// Package boxtree is an incremental box layout engine for retained widget
// trees.
//
// Hosts build a Tree of render objects, mark nodes dirty as their state
// changes and run a layout pass once per frame. Only dirty nodes and the
// ancestors whose size depends on them are measured again; everything else
// is served from the layout cache. Laid-out boxes can be mapped between
// local and global coordinates and hit tested.
//
// Users import this single package for the public API: the tree, the
// built-in render objects, geometry types, and reactive state.
package boxtree
