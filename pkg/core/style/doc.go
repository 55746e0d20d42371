// Package style maps task state to colour tokens.
//
// The mapping is a fixed lookup over status, blocked state and priority so
// that every renderer (SVG, DOT, terminal) draws the same task the same way
// and the table can be tested without rendering anything.
package style
