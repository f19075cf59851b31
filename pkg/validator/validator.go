package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/synergysphere/synergy/internal/domain"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, fullName, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Email
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	// Full name
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		errs.Add("full_name", "Full name is required")
	} else if len(fullName) < 2 {
		errs.Add("full_name", "Full name must be at least 2 characters")
	} else if len(fullName) > 100 {
		errs.Add("full_name", "Full name is too long")
	}

	// Password
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateProject(title, status, priority string, progress int, start time.Time, due *time.Time) ValidationErrors {
	errs := make(ValidationErrors)

	title = strings.TrimSpace(title)
	if title == "" {
		errs.Add("title", "Project title is required")
	} else if len(title) < 2 {
		errs.Add("title", "Project title must be at least 2 characters")
	} else if len(title) > 200 {
		errs.Add("title", "Project title is too long")
	}

	if status != "" && !validProjectStatus(status) {
		errs.Add("status", "Status must be planning, active, review, completed, or on_hold")
	}
	if priority != "" && !validPriority(priority) {
		errs.Add("priority", "Priority must be low, medium, high, or urgent")
	}
	if progress < 0 || progress > 100 {
		errs.Add("progress", "Progress must be between 0 and 100")
	}
	if due != nil && !start.IsZero() && due.Before(start) {
		errs.Add("due_date", "Due date cannot be before the start date")
	}

	return errs
}

func ValidateTask(title, status, priority string, estimated, actual *float64) ValidationErrors {
	errs := make(ValidationErrors)

	title = strings.TrimSpace(title)
	if title == "" {
		errs.Add("title", "Task title is required")
	} else if len(title) < 2 {
		errs.Add("title", "Task title must be at least 2 characters")
	} else if len(title) > 200 {
		errs.Add("title", "Task title is too long")
	}

	if status != "" && !validTaskStatus(status) {
		errs.Add("status", "Status must be todo, in_progress, review, or done")
	}
	if priority != "" && !validPriority(priority) {
		errs.Add("priority", "Priority must be low, medium, high, or urgent")
	}
	if estimated != nil && *estimated < 0 {
		errs.Add("estimated_hours", "Estimated hours cannot be negative")
	}
	if actual != nil && *actual < 0 {
		errs.Add("actual_hours", "Actual hours cannot be negative")
	}

	return errs
}

func ValidateMessage(content, messageType string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(content) == "" {
		errs.Add("content", "Message content is required")
	} else if len(content) > 1000 {
		errs.Add("content", "Message cannot exceed 1000 characters")
	}

	if messageType != "" && messageType != domain.MessageTypeText &&
		messageType != domain.MessageTypeFile && messageType != domain.MessageTypeSystem {
		errs.Add("message_type", "Message type must be text, file, or system")
	}

	return errs
}

func ValidateInvitation(email, role string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if role != domain.RoleManager && role != domain.RoleTeam {
		errs.Add("role", "Role must be manager or team")
	}

	return errs
}

func validProjectStatus(s string) bool {
	switch s {
	case domain.ProjectStatusPlanning, domain.ProjectStatusActive, domain.ProjectStatusReview,
		domain.ProjectStatusCompleted, domain.ProjectStatusOnHold:
		return true
	}
	return false
}

func validTaskStatus(s string) bool {
	switch s {
	case domain.TaskStatusTodo, domain.TaskStatusInProgress, domain.TaskStatusReview, domain.TaskStatusDone:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch p {
	case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent:
		return true
	}
	return false
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}

	if len(missing) > 0 {
		errs.Add("password", fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}
