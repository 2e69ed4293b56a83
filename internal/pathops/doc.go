// Package pathops implements Boolean set operations on flattened path
// polygons: union, intersection, difference, reverse-difference and xor.
//
// Curved paths are flattened into polygon contours first (the caller
// supplies already-flattened point loops); this package only reasons
// about straight-edge polygons, classifying each contour's orientation
// by signed area and combining them per the requested operation.
//
// The algorithm matches a conventional polygon-clip approach (as used
// by vector 2D engines for Boolean path ops): Sutherland-Hodgman
// clipping for intersection, containment elimination for union, and a
// documented approximation for difference when the clip only partially
// overlaps the subject (see Difference).
package pathops
