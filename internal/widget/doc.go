// Package widget provides the basic render objects built on the layout
// engine: fixed-size boxes, overlapping stacks, and visibility and pointer
// wrappers. Row and column containers are layout.Flex.
package widget
