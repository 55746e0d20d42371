package task

// Status is the workflow state of a task. Only [StatusDone] carries meaning
// for the graph engine: it is the one value that satisfies a dependency.
type Status string

// Recognized workflow states. Anything else is treated as not done.
const (
	StatusToDo       Status = "To Do"
	StatusInProgress Status = "In Progress"
	StatusInReview   Status = "In Review"
	StatusDone       Status = "Done"
)

// IsDone reports whether the status satisfies a dependency.
// The comparison is exact: "done" or "DONE" do not count.
func (s Status) IsDone() bool { return s == StatusDone }

// IsKnown reports whether s is one of the recognized workflow states.
func (s Status) IsKnown() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusInReview, StatusDone:
		return true
	}
	return false
}

// Priority is used for node styling only and never affects layout.
type Priority string

// Recognized priorities.
const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
	PriorityUrgent Priority = "Urgent"
)

// IsKnown reports whether p is one of the recognized priorities.
func (p Priority) IsKnown() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Task is a unit of work as owned by the task store. The engine only reads it.
//
// Dependencies lists the ids of tasks that must reach [StatusDone] before this
// task is unblocked. The list may be empty, may name ids that no longer exist,
// and may form cycles (including a task naming itself).
type Task struct {
	ID           string   `json:"id" yaml:"id" bson:"id"`
	Title        string   `json:"title" yaml:"title" bson:"title"`
	Status       Status   `json:"status" yaml:"status" bson:"status"`
	Priority     Priority `json:"priority,omitempty" yaml:"priority,omitempty" bson:"priority,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty" bson:"dependencies,omitempty"`
	Assignee     string   `json:"assignee,omitempty" yaml:"assignee,omitempty" bson:"assignee,omitempty"`
	DueDate      string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty" bson:"dueDate,omitempty"`
}

// HasDependencies reports whether the task declares any dependency ids.
func (t Task) HasDependencies() bool { return len(t.Dependencies) > 0 }

// DisplayTitle returns the title, falling back to the id for untitled tasks.
func (t Task) DisplayTitle() string {
	if t.Title != "" {
		return t.Title
	}
	return t.ID
}
