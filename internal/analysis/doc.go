// Package analysis measures drape quality from particle snapshots.
//
// The package works on raw frames rather than on a live solver, so the
// same measurements apply to a running session, a stored run, or a
// single exported frame:
//
//   - [MinHeight], [MeanHeight], [HeightSpread]: vertical statistics
//   - [SilhouetteRadius]: horizontal extent of the top-down silhouette
//   - [ContactCount]: particles resting on the sphere's padded surface
//   - [Drape]: all of the above bundled into a [DrapeReport]
//
// # Reading a report
//
// A stiff sheet flares outward and reads a large silhouette; a soft
// one collapses around the sphere and reads a small silhouette with a
// lower mean height:
//
//	report := analysis.Drape(frame, sphere, 0.02)
//	fmt.Print(report)
package analysis
