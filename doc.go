// Package vecpath models 2D vector paths made of cubic Bézier segments and
// answers geometric questions about them. It was designed for generative and
// plotter graphics, where one wants to walk along an outline, place things on
// it, and transform it, but it does not draw anything itself.
//
// # Commands and paths
//
// A [Path] is an immutable list of drawing commands, akin to those of
// PostScript or SVG: [MoveTo] lifts the pen and puts it down at a point,
// [LineTo] draws a straight line, [CurveTo] draws a cubic Bézier, and [Close]
// ends the current subpath and connects it back to its start. Paths are
// created from commands with [NewPath], from SVG path data with
// [NewPathFromSVG], or with the shape constructors [Rectangle],
// [RoundedRectangle], [Ellipse] and [Circle].
//
// The command list is the interchange format of the package. [Path.Commands]
// returns it, [Path.SVG] formats it as SVG path data, and [MarshalCommands]
// and [UnmarshalCommands] read and write it as YAML.
//
// # Anchors and curves
//
// From its commands, a path derives [Subpath] values, each consisting of a
// list of [Anchor] values and the [Curve] values connecting them. An anchor
// is an on-curve point with optional incoming and outgoing handles; a curve
// is the cubic Bézier between two anchors, where missing handles collapse
// onto their anchor's point. Closed subpaths have an additional curve from
// their last anchor back to their first.
//
// This derivation, including the arc length of every curve, happens lazily
// the first time a path is queried, and at most once per path.
//
// # Querying paths
//
// Positions on a path are expressed as t ∈ [0, 1], a fraction of the path's
// total arc length. [Path.PointAt], [Path.TangentAt], [Path.NormalAt],
// [Path.CurvatureAt] and [Path.RadiusAt] locate the curve containing t and
// evaluate it at the corresponding local parameter. Locating is a linear scan
// over subpaths and curves; see [Path.Locate].
//
// Arc lengths are computed with 24-point Legendre-Gauss quadrature and are
// not exact for curved segments. As a consequence, positions along curved
// segments are proportional to arc length only approximately.
//
// # Angles and transforms
//
// All angles are in degrees, see [Radians] and [Degrees] for conversions.
// [Affine] describes affine transformations; [Path.Transform] applies them to
// every point of a path, and [Path.Scale] and [Path.Rotate] operate about the
// center of the path's [Path.BoundingBox].
//
// # Logging
//
// The package is silent by default. Use [SetLogger] to receive debug output.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [SVG 1.1, implementation notes on elliptical arcs]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [SVG 1.1, implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package vecpath
