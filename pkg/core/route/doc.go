// Package route draws the connectors between dependent tasks.
//
// Each resolvable dependency becomes a [Connection] with a cubic curve from
// the dependency's right edge to the dependent's left edge. A connection is
// blocked while its dependency is not done; the id "parent-child" links it
// to the highlight sets computed by the highlight package.
package route
