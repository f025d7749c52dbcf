package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskCategory groups tasks on the task board.
type TaskCategory string

const (
	TaskCategoryDaily        TaskCategory = "daily"
	TaskCategoryWeekly       TaskCategory = "weekly"
	TaskCategoryHighPriority TaskCategory = "high_priority"
)

func (c TaskCategory) String() string { return string(c) }

func (c TaskCategory) IsValid() bool {
	switch c {
	case TaskCategoryDaily, TaskCategoryWeekly, TaskCategoryHighPriority:
		return true
	}
	return false
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task priority bounds.
const (
	MinTaskPriority = 1
	MaxTaskPriority = 5
)

// Task is a to-do item.
type Task struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Description   string
	Category      TaskCategory
	Priority      int
	Status        TaskStatus
	EstimatedTime *int
	ActualTime    *int
	DueDate       *string
	CompletedAt   *time.Time
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsCompleted reports whether the task is done.
func (t Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// TaskUpdateParams holds optional fields for a partial task update.
type TaskUpdateParams struct {
	Title         *string
	Description   *string
	Category      *TaskCategory
	Priority      *int
	Status        *TaskStatus
	EstimatedTime *int
	DueDate       *string
	Tags          []string
}

// TaskFilter narrows a task listing.
type TaskFilter struct {
	Category *TaskCategory
	Status   *TaskStatus
}

// TaskStats holds the task counters used by the dashboard.
type TaskStats struct {
	CompletedToday  int
	TotalToday      int
	WeeklyCreated   int
	WeeklyCompleted int
	TotalCompleted  int
}
