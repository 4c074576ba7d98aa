package storage

// Task is the persisted shape of a task. Enum fields are stored as their
// string values; the store revalidates them on load.
type Task struct {
	ID          string
	Title       string
	Description string
	Date        string
	Time        string
	Priority    string
	Category    string
	Completed   bool
	Scheduled   bool
}
