// Package resample provides band-limited (Whittaker-Shannon) interpolation
// of sampled diffraction data onto a new grid.
//
// The sample grid is assumed uniformly spaced; the band limit is taken from
// its spacing. Points outside the sampled range clamp to the edge values by
// default and can be overridden with [WithLeft] and [WithRight].
//
// Common workflows:
//   - Wsinterp(x, xp, fp) to interpolate onto an existing grid
//   - Resample(xp, fp, xmin, xmax, n) to build a grid and interpolate in one step
//   - WsinterpAt(t, xp, fp) for a single point
package resample
