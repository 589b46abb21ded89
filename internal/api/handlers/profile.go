package handlers

import (
	"net/http"

	"employee-portal-backend/internal/service"
	"employee-portal-backend/internal/view"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles HTTP requests for the signed-in employee's profile screen
type ProfileHandler struct {
	screens  *view.Registry
	profiles service.ProfileServiceInterface
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(screens *view.Registry, profiles service.ProfileServiceInterface) *ProfileHandler {
	return &ProfileHandler{
		screens:  screens,
		profiles: profiles,
	}
}

// GetProfile loads the profile
// @Summary Load my profile
// @Description Fetch the signed-in employee with departments, teams, projects and work schedule
// @Tags profile
// @Produce json
// @Success 200 {object} view.ProfileView "Loaded profile"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Failure 409 {object} map[string]interface{} "Superseded by a newer request"
// @Failure 502 {object} map[string]interface{} "Store request failed"
// @Security BearerAuth
// @Router /api/v1/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	session, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	v, err := screens.Profile.Load(c.Request.Context(), session)
	if err != nil {
		respondScreenError(c, err, v)
		return
	}

	c.JSON(http.StatusOK, v)
}

// BeginEdit switches the profile screen to edit mode
// @Summary Start editing my profile
// @Description Copy the loaded profile into an editable draft
// @Tags profile
// @Produce json
// @Success 200 {object} view.ProfileView "Profile in edit mode"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Profile has not been loaded"
// @Security BearerAuth
// @Router /api/v1/profile/edit [post]
func (h *ProfileHandler) BeginEdit(c *gin.Context) {
	_, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	v, err := screens.Profile.BeginEdit()
	if err != nil {
		respondScreenError(c, err, v)
		return
	}

	c.JSON(http.StatusOK, v)
}

// UpdateDraft changes fields of the draft
// @Summary Change my profile draft
// @Description Set full name, work mode or work schedule on the draft; nothing is saved
// @Tags profile
// @Accept json
// @Produce json
// @Param patch body view.DraftPatch true "Draft fields to change"
// @Success 200 {object} view.ProfileView "Updated draft"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 409 {object} map[string]interface{} "Profile is not in edit mode"
// @Security BearerAuth
// @Router /api/v1/profile/draft [patch]
func (h *ProfileHandler) UpdateDraft(c *gin.Context) {
	_, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	var patch view.DraftPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	v, err := screens.Profile.UpdateDraft(patch)
	if err != nil {
		respondScreenError(c, err, v)
		return
	}

	c.JSON(http.StatusOK, v)
}

// Submit saves the draft
// @Summary Save my profile
// @Description Write the draft's full name, work mode and work schedule, then reload the profile. On failure the draft is kept.
// @Tags profile
// @Produce json
// @Success 200 {object} view.ProfileView "Saved and reloaded profile"
// @Failure 400 {object} map[string]interface{} "Draft failed validation"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Failure 404 {object} map[string]interface{} "Employee or work schedule not found"
// @Failure 409 {object} map[string]interface{} "Profile is not in edit mode"
// @Failure 502 {object} map[string]interface{} "Store request failed"
// @Security BearerAuth
// @Router /api/v1/profile/submit [post]
func (h *ProfileHandler) Submit(c *gin.Context) {
	session, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	v, err := screens.Profile.Submit(c.Request.Context(), session)
	if err != nil {
		respondScreenError(c, err, v)
		return
	}

	c.JSON(http.StatusOK, v)
}

// CancelEdit discards the draft
// @Summary Cancel editing my profile
// @Description Discard the draft and return to the last loaded profile
// @Tags profile
// @Produce json
// @Success 200 {object} view.ProfileView "Profile in viewing mode"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security BearerAuth
// @Router /api/v1/profile/cancel [post]
func (h *ProfileHandler) CancelEdit(c *gin.Context) {
	_, screens, ok := screensFor(c, h.screens)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, screens.Profile.CancelEdit())
}

// ListWorkSchedules lists the schedules a profile may reference
// @Summary List work schedules
// @Description List the work schedules available for the profile editor, by name
// @Tags profile
// @Produce json
// @Success 200 {array} models.WorkSchedule "Work schedules"
// @Failure 502 {object} map[string]interface{} "Store request failed"
// @Security BearerAuth
// @Router /api/v1/work-schedules [get]
func (h *ProfileHandler) ListWorkSchedules(c *gin.Context) {
	schedules, err := h.profiles.ListWorkSchedules(c.Request.Context())
	if err != nil {
		status, message := statusOf(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, schedules)
}
