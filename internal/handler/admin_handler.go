package handler

import (
	"net/http"
	"strconv"

	"anoa.com/bskmtclub/internal/dto"
	"anoa.com/bskmtclub/internal/service"
	"anoa.com/bskmtclub/pkg/response"
	"anoa.com/bskmtclub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminService      service.AdminService
	membershipService service.MembershipService
}

func NewAdminHandler(adminService service.AdminService, membershipService service.MembershipService) *AdminHandler {
	return &AdminHandler{
		adminService:      adminService,
		membershipService: membershipService,
	}
}

func (h *AdminHandler) CreateMember(c *gin.Context) {
	var input dto.CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	user, err := h.adminService.CreateMember(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AdminHandler) ListMembers(c *gin.Context) {
	users, err := h.adminService.ListMembers(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}

// ChangeTier applies an upgrade the admin verified against the progress
// report. Only the direct next tier is accepted.
func (h *AdminHandler) ChangeTier(c *gin.Context) {
	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var input dto.ChangeTierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.membershipService.ChangeTier(c.Request.Context(), memberID, adminID, input.Tier); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tier": input.Tier})
}

func (h *AdminHandler) ReviewLeaderApplication(c *gin.Context) {
	adminID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	applicationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var input dto.ReviewApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	app, err := h.membershipService.ReviewLeaderApplication(c.Request.Context(), uint(applicationID), adminID, input.Approve, input.Note)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *AdminHandler) AddDisciplinaryRecord(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var input dto.DisciplinaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.adminService.AddDisciplinaryRecord(c.Request.Context(), memberID, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "record added"})
}

func (h *AdminHandler) AddVolunteeringRecord(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	var input dto.VolunteeringInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	if err := h.adminService.AddVolunteeringRecord(c.Request.Context(), memberID, input); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "volunteering recorded"})
}

// ConfirmAttendance verifies a member's presence at an event on behalf of
// the organizer.
func (h *AdminHandler) ConfirmAttendance(c *gin.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var input dto.ConfirmAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	memberID, err := uuid.Parse(input.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member id"})
		return
	}

	if err := h.membershipService.ConfirmAttendance(c.Request.Context(), memberID, eventID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "attendance confirmed"})
}

func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var input dto.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	event, err := h.adminService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}
