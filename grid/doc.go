// Package grid provides Grid, a sparse coordinate-indexed map of tiles that
// tracks the bounding box of every coordinate ever written.
//
// What:
//
//   - Insert / Get / Pointer for present values.
//   - Ensure: get-or-default access that grows the bounding box. This is the
//     only way a grid expands besides Insert; there is no resize call.
//   - EnumerateTiles walks the whole bounding box, present or not.
//     EnumerateTilesMut first materializes a zero tile for every missing cell.
//   - Neighbors with Conn4 or Conn8 connectivity, clipped to the box.
//   - Render prints the box row by row in visual order.
//
// Invariants:
//
//   - Bounds() contains every stored key. It may also contain coordinates
//     without an entry; those read as absent, not as zero.
//   - Bounds() never shrinks.
//
// Errors:
//
//   - ErrNonRectangular: FromRows received rows of differing lengths.
//
// Missing keys are reported through ok flags and nil pointers; callers that
// assume presence decide for themselves whether absence is fatal.
package grid
