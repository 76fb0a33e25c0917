// Package viewer implements the interactive side of the fractal viewer: the
// viewport state machine, the frame pacer and the render loop that ties
// them to a presentation surface and an input source.
//
// The loop is backend-agnostic. A window backend calls Loop.Step from its
// own update callback; headless runs call Loop.Run.
package viewer
