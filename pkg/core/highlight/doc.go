// Package highlight answers "what does this task depend on, and what
// depends on it".
//
// [Compute] takes the focused task id as an explicit argument and returns a
// [Context] holding every upstream and downstream task together with the
// connection ids along the way. Renderers use [Context.HasNode],
// [Context.HasConnection] and [Context.Dims] to emphasise the closure and
// fade everything else.
package highlight
