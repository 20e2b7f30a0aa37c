// Package viz draws affine scenes in the terminal.
//
//   - [Canvas]: braille pixel canvas, 2x4 dots per cell
//   - [Camera]: pinhole camera carried by a [geom.Rigidbody]
//   - [Wireframe]: target outlines, probe rays and hit markers
//   - [Model]: interactive Bubble Tea viewer
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Tab     - Select next target
//	x y z   - Pitch, yaw, roll the target (shift reverses)
//	F       - Flip the target upside down
//	[ ]     - Push the target along its forward axis
//	Arrows  - Turn the camera
//	T       - Cycle color themes
//	?       - Show help overlay
//
// The viewer recasts the probe sweep after every edit, so hit markers
// always match the drawn targets.
package viz
