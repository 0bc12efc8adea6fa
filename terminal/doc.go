// Package terminal hosts the game on a tcell screen.
//
// The 500x500 canvas is rasterized into a sub-pixel framebuffer where every
// cell carries two vertical pixels through the upper half block glyph. The
// mapping keeps a uniform scale and letterboxes the canvas in the middle of
// the terminal. Text is overlaid per cell at the nearest cell position.
//
// Terminals report presses and auto-repeats but no releases, so Input keeps a
// hold window per directional key and emits the release from Expire.
package terminal
