// Package input tracks keyboard and mouse state across frames.
//
// State is fed from the host window's event callbacks (for gogpu apps,
// EventSource's OnKeyPress and friends) and queried from game logic.
// Calling Update at the end of each frame snapshots the live state so
// JustPressed and JustReleased report one-frame edges.
//
// All state types are safe for concurrent use.
package input
