// Package pkg provides the libraries behind taskgraph, the task dependency
// graph of the project dashboard.
//
// # Overview
//
// A project's tasks name the tasks they depend on. taskgraph places every task
// one layer right of its deepest dependency, stacks each layer vertically,
// routes a curved connector from each dependency to its dependent, marks
// connectors whose dependency is not done, and answers which tasks and
// connectors lie upstream or downstream of a focused task.
//
// The input is not required to be a DAG: self references, cycles and
// references to unknown tasks are tolerated everywhere.
//
// # Architecture
//
//	Task store (MongoDB) or task file (JSON/YAML)
//	         ↓
//	    [store] / [io] (load []task.Task)
//	         ↓
//	    [core/engine] (levels → geometry → routing → highlight)
//	         ↓
//	    [graph] (canonical JSON layout)
//	         ↓
//	    [render/svg], [render/nodelink], [render] (SVG, DOT, PNG, PDF)
//
// [pipeline] runs these stages with caching and is shared by the CLI and the
// HTTP API.
//
// # Quick Start
//
//	import (
//	    "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/engine"
//	    "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
//	    "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/graph"
//	    "github.com/tam-pham-duc/ProManage-AI-sub001/pkg/render/svg"
//	)
//
//	r := engine.Compute(tasks, "build", layout.DefaultConfig())
//	out := svg.Render(graph.FromResult(r), svg.WithInteractive())
//
// # Main Packages
//
// ## Core
//
// [core/task] - Task records, the id index and the blocked-state rule.
//
// [core/dag] - Directed graph of tasks; [core/dag/transform] assigns levels
// and finds cycles and dangling references.
//
// [core/layout] - Geometry planner: node boxes and canvas bounds.
//
// [core/route] - Connector router: anchors, cubic curves and blocked edges.
//
// [core/highlight] - Reachability highlighter for a focused task.
//
// [core/style] - Colour descriptors per status, priority and blocked state.
//
// [core/engine] - One pure pass over all of the above.
//
// ## Infrastructure
//
// [pipeline] - Load → compute → render with caching.
//
// [cache] - Null, file and Redis caches with content-addressed keys.
//
// [store] - Task sources: files and MongoDB.
//
// [config] - TOML configuration.
//
// [errors] - Coded errors shared by the CLI and the API.
//
// [observability] - Hooks for pipeline, cache and store events.
package pkg
