package handler

import (
	"net/http"

	"anoa.com/bskmtclub/internal/dto"
	"anoa.com/bskmtclub/internal/service"
	"anoa.com/bskmtclub/pkg/response"
	"anoa.com/bskmtclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipHandler struct {
	membershipService service.MembershipService
}

func NewMembershipHandler(membershipService service.MembershipService) *MembershipHandler {
	return &MembershipHandler{
		membershipService: membershipService,
	}
}

// GetMyProgress reports the caller's own membership progress.
func (h *MembershipHandler) GetMyProgress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	report, err := h.membershipService.GetMembershipProgress(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetMemberProgress reports another member's progress. Admin only (routing).
func (h *MembershipHandler) GetMemberProgress(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	report, err := h.membershipService.GetMembershipProgress(c.Request.Context(), memberID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *MembershipHandler) SetVolunteer(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.VolunteerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.membershipService.SetVolunteer(c.Request.Context(), userID, *input.IsVolunteer); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_volunteer": *input.IsVolunteer})
}

func (h *MembershipHandler) ApplyForLeader(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input dto.LeaderApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	app, err := h.membershipService.ApplyForLeader(c.Request.Context(), userID, input.Motivation)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// RecordAttendance marks the caller as attending an event and accrues the
// attendance points asynchronously. The record starts unconfirmed; organizer
// confirmation goes through the admin surface.
func (h *MembershipHandler) RecordAttendance(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.membershipService.RecordAttendance(c.Request.Context(), userID, eventID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "attendance recorded"})
}
