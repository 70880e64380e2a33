// Package coordinate provides 2D points whose axis orientation is part of
// their type, and RectangularRange, an axis-aligned bounding box over them.
//
// What:
//
//   - Direction: Up, Down, Left, Right and the neutral None.
//   - Orientation markers (RightUp, RightDown, LeftUp, LeftDown) fix, per type,
//     which way the stored horizontal and vertical values grow.
//   - XY (Cartesian x/y) and RowCol (screen row/col) both satisfy the
//     Coordinate constraint, so geometry code is written once.
//   - RectangularRange: extension, containment, corners, edges, expansion and
//     lazy iteration over the contained coordinates.
//
// Why:
//
//   - Puzzle inputs mix screen coordinates (row grows downward) and Cartesian
//     ones (y grows upward). With the orientation in the type, "Up" always
//     means up and the same bounding-box or search code serves both.
//
// Orientation:
//
//	Cell  = RowCol[int, RightDown]   Up decreases Row, Right increases Col
//	Point = XY[int, RightUp]         Up increases Y,   Right increases X
//
// Iteration:
//
//   - RectangularRange.All walks the horizontal axis in the outer loop and the
//     vertical axis in the inner loop, both in ascending stored order.
//   - Rows and Columns walk one axis in visual order (top to bottom, left to
//     right) whatever the orientation.
package coordinate
