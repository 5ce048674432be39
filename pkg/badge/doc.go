// Package badge paints scope badges with a random background and a
// readable black or white foreground.
//
// # Overview
//
// Every badge gets a fresh [Color] drawn from a [Source]. The foreground is
// picked by [ContrastColor] from the colour's perceptual luminance:
//
//	L = 0.299*R + 0.587*G + 0.114*B
//
// Badges with L > 186 get black text (#000000), all others white (#ffffff).
// Channel values are used as-is, without gamma correction.
//
// # Hosts
//
// The package never touches a document directly. Callers hand [Colorize] the
// badge ids they found and a [Styler] that knows how to set the two
// presentation properties on them:
//
//	doc, _ := htmldoc.Parse(r)
//	ids := doc.Query(badge.ClassName)
//	badge.Colorize(ids, doc, badge.NewSource(42))
//
// [Trigger] wraps the same operation as a one-shot hook for hosts that
// colorize once per page load.
package badge
