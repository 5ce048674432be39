// Package site builds the static HTML documentation for a snippet tree.
//
// # Output layout
//
//	<output>/index.html            folder → file → snippet tree
//	<output>/snippets/<slug>.html  one page per snippet
//	<output>/style.css
//	<output>/scopes-color.js       only with ColorizeClient
//
// # Badge colouring
//
// Scope badges are painted according to [ColorizeMode]:
//
//   - [ColorizeBuild] paints every page at build time through
//     htmldoc.ColorizeHTML, drawing from one source seeded with Options.Seed
//   - [ColorizeClient] ships scopes-color.js, which paints badges in the
//     browser on DOMContentLoaded
//   - [ColorizeOff] leaves badges with their stylesheet colours
//
// Rendered pages are cached before colouring, so a cache hit still gets a
// fresh palette.
package site
