// Package blur renders soft drop shadows from coverage masks.
//
// A shadow is produced in three steps:
//   - the caller rasterizes the shape into an *image.Alpha mask
//   - Mask blurs the mask with a separable Gaussian
//   - Colorize turns the blurred mask into a premultiplied *image.RGBA
//
// Blur radii follow the usual canvas convention: a radius r maps to a
// Gaussian with sigma = 0.57735*r + 0.5 (see Sigma).
package blur
