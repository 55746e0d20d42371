// Package svg renders a computed task graph as a standalone SVG document.
//
// Each task is a rounded box at the position the engine assigned, coloured
// by its style descriptor: status picks the palette, blocked tasks get a red
// dashed border and priority adds an accent stripe. Connectors are the
// engine's cubic curves with an arrowhead at the dependent task.
//
// If the layout was computed with a focus task, everything outside its
// upstream and downstream closure is faded. [WithInteractive] adds a small
// script that performs the same highlight on hover in a browser.
package svg
