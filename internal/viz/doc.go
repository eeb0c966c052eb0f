// Package viz renders simulation steps for the terminal.
//
// [Format] turns a single step into styled text: the structure snapshot with
// highlighted elements, the step message and a legend of active roles.
// [Player] is a Bubble Tea model bound to a [playback.Controller].
//
// # Key Bindings
//
//	Space     - Play/Pause
//	N / Right - Next step
//	P / Left  - Previous step
//	G / End   - Jump to first / last step
//	R         - Reset to the first step
//	+ / -     - Faster / slower
//	T         - Cycle color themes
//	Q         - Quit
package viz
