package dto

import "time"

type CreateMemberInput struct {
	Username string     `json:"username" binding:"required,min=3,max=50"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     *string    `json:"role"`
	JoinDate *time.Time `json:"join_date"`
}

type ChangeTierInput struct {
	Tier string `json:"tier" binding:"required"`
}

type ReviewApplicationInput struct {
	Approve bool    `json:"approve"`
	Note    *string `json:"note"`
}

type DisciplinaryInput struct {
	Kind        string `json:"kind" binding:"required,oneof=disciplinary ethics"`
	Description string `json:"description" binding:"required"`
}

type CreateEventInput struct {
	Title    string    `json:"title" binding:"required,min=3,max=150"`
	Type     string    `json:"type" binding:"required,oneof=community educational other"`
	Official *bool     `json:"official"`
	Date     time.Time `json:"date" binding:"required"`
}

type ConfirmAttendanceInput struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

type VolunteeringInput struct {
	Activity    string     `json:"activity" binding:"required,min=3,max=150"`
	CompletedAt *time.Time `json:"completed_at"`
}
