package demo

import (
	"time"

	"github.com/google/uuid"

	"github.com/synergysphere/synergy/internal/domain"
)

// Fixed identifiers for the sample records so repeated reads are stable
// and the product is explorable without any backend.
var (
	ManagerID    = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	TeamMemberID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	ProjectID    = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	TaskID       = uuid.MustParse("44444444-4444-4444-8444-444444444444")
	MessageID    = uuid.MustParse("55555555-5555-4555-8555-555555555555")
	InviteID     = uuid.MustParse("66666666-6666-4666-8666-666666666666")
	ActivityID   = uuid.MustParse("77777777-7777-4777-8777-777777777777")
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func seed(st *state) {
	now := st.seedTime

	st.profiles = []domain.Profile{
		{
			ID:         ManagerID,
			Email:      "manager@demo.com",
			FullName:   "Demo Manager",
			Role:       domain.RoleManager,
			Department: strPtr("Engineering"),
			CreatedAt:  now.Add(-60 * 24 * time.Hour),
			UpdatedAt:  now,
		},
		{
			ID:         TeamMemberID,
			Email:      "team@demo.com",
			FullName:   "Demo Team Member",
			Role:       domain.RoleTeam,
			Department: strPtr("Engineering"),
			CreatedAt:  now.Add(-45 * 24 * time.Hour),
			UpdatedAt:  now,
		},
	}

	st.projects = []domain.Project{
		{
			ID:          ProjectID,
			Title:       "Website Redesign",
			Description: "Complete redesign of the company website with modern UI/UX",
			Status:      domain.ProjectStatusActive,
			Priority:    domain.PriorityHigh,
			ManagerID:   ManagerID,
			TeamMembers: []uuid.UUID{ManagerID, TeamMemberID},
			Progress:    65,
			StartDate:   now.Add(-30 * 24 * time.Hour),
			DueDate:     timePtr(now.Add(15 * 24 * time.Hour)),
			CreatedAt:   now.Add(-30 * 24 * time.Hour),
			UpdatedAt:   now,
		},
	}

	st.tasks = []domain.Task{
		{
			ID:             TaskID,
			ProjectID:      ProjectID,
			Title:          "Design new homepage layout",
			Description:    strPtr("Create wireframes and mockups for the new homepage design"),
			Status:         domain.TaskStatusInProgress,
			Priority:       domain.PriorityHigh,
			AssignedTo:     TeamMemberID,
			CreatedBy:      ManagerID,
			DueDate:        timePtr(now.Add(7 * 24 * time.Hour)),
			EstimatedHours: floatPtr(16),
			ActualHours:    floatPtr(8),
			CreatedAt:      now.Add(-7 * 24 * time.Hour),
			UpdatedAt:      now,
		},
	}

	st.messages = []domain.TeamMessage{
		{
			ID:          MessageID,
			ProjectID:   &st.projects[0].ID,
			SenderID:    ManagerID,
			Content:     "Welcome to the project! Let's make this great.",
			MessageType: domain.MessageTypeText,
			CreatedAt:   now.Add(-2 * 24 * time.Hour),
			SenderName:  "Demo Manager",
		},
	}

	st.invites = []domain.TeamInvitation{
		{
			ID:        InviteID,
			Email:     "newuser@example.com",
			Role:      domain.RoleTeam,
			InvitedBy: ManagerID,
			Status:    domain.InviteStatusPending,
			ExpiresAt: now.Add(5 * 24 * time.Hour),
			CreatedAt: now.Add(-2 * 24 * time.Hour),
		},
	}

	st.activity = []domain.ActivityLog{
		{
			ID:         ActivityID,
			UserID:     ManagerID,
			Action:     "created_project",
			EntityType: domain.EntityProject,
			EntityID:   ProjectID,
			Details:    map[string]any{"project_name": "Website Redesign"},
			CreatedAt:  now.Add(-24 * time.Hour),
		},
	}

	st.seeded = map[uuid.UUID]bool{
		ProjectID:  true,
		ActivityID: true,
	}
}
