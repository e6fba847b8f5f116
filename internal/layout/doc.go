// Package layout computes deterministic target transforms for arranging N
// items in 3D space under the four supported formations:
//
//   - [Table]: flat 20-column wall, the default formation
//   - [Sphere]: Fibonacci-style even spherical distribution
//   - [Helix]: double helix, alternating strands by index parity
//   - [Grid]: 5x4x10 volumetric lattice
//
// All generators are pure functions of the item count: same count, same
// transforms, bit for bit. [Compute] produces all four target sets together
// so they can never be mixed across different counts.
//
// # Orientation
//
// Rotations are XYZ Euler angles in radians. Sphere and helix items face
// outward from their formation's axis; the look-at math orients an item's
// +Z axis toward a point with +Y up.
package layout
