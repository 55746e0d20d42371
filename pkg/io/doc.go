// Package io reads and writes task lists as JSON or YAML.
//
// # Format
//
// A task file is either a bare list of tasks or an object with a "tasks"
// list and an optional "project" name. JSON and YAML use the same field
// names:
//
//	project: website
//	tasks:
//	  - id: design
//	    title: Design mockups
//	    status: Done
//	  - id: build
//	    title: Build pages
//	    status: In Progress
//	    priority: High
//	    dependencies: [design]
//
// # Fields
//
// Required:
//   - title (or id)
//
// Optional:
//   - id: generated from the title and position when missing
//   - status: "To Do", "In Progress", "In Review" or "Done"; any other
//     value is kept and treated as not done
//   - priority, assignee, dueDate: carried through for display
//   - dependencies: ids of prerequisite tasks; unknown ids are kept and
//     ignored by the engine
//
// # Import
//
//	tasks, err := io.ImportTasks("tasks.yaml")
//
// The format is chosen from the extension; [ReadTasks] takes it explicitly.
//
// # Export
//
//	err := io.ExportTasks(tasks, "tasks.json")
package io
