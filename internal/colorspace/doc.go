// Package colorspace provides the immutable color values used by fingerprint
// palettes and renderers.
//
// Two representations are supported and both satisfy the sealed Color
// interface:
//   - RGB: 8-bit integer channels (0-255)
//   - HSL: Hue (0-360 degrees), Saturation (0-100), Lightness (0-100)
//
// Conversions between the two are pure closed-form functions. RGB to HSL to
// RGB reproduces the original within one unit per channel. HSL hue is taken
// modulo 360 when converting, so 360 and 0 describe the same color; palette
// endpoints use 360 to encode a full sweep.
//
// # Display Strings
//
// String returns "#rrggbb" for RGB and "hsl(H, S%, L%)" for HSL. Parse accepts
// both forms back, so a color written into an SVG or a palette file can be
// read again without loss.
//
// # Errors
//
// Constructors return ErrInvalidColorComponent for any channel outside its
// range. Use MustRGB and MustHSL only for values known to be valid, such as
// compile-time palette endpoints.
package colorspace
