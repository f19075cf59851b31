package domain

const (
	InsightOptimization = "optimization"
	InsightResource     = "resource"
	InsightEfficiency   = "efficiency"
)

// Insight is a static recommendation panel rendered on the dashboard.
type Insight struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
	Impact      string `json:"impact"`
}

// DashboardSummary aggregates the signals the insight panels sit next to.
type DashboardSummary struct {
	TotalProjects   int     `json:"total_projects"`
	ActiveProjects  int     `json:"active_projects"`
	AverageProgress int     `json:"average_progress"`
	TotalTasks      int     `json:"total_tasks"`
	CompletedTasks  int     `json:"completed_tasks"`
	InProgressTasks int     `json:"in_progress_tasks"`
	OverdueTasks    int     `json:"overdue_tasks"`
	TasksDueSoon    int     `json:"tasks_due_soon"`
	CompletionRate  int     `json:"completion_rate"`
	MessagesToday   int     `json:"messages_today"`
	UniqueSenders   int     `json:"unique_senders"`
	EstimatedHours  float64 `json:"estimated_hours"`
	ActualHours     float64 `json:"actual_hours"`
}
