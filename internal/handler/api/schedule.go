package api

import (
	"net/http"

	reqdto "recipe-scheduler/internal/handler/dto/request"
	resdto "recipe-scheduler/internal/handler/dto/response"
	"recipe-scheduler/internal/handler/httperr"
	"recipe-scheduler/internal/handler/middleware"
	"recipe-scheduler/internal/usecase/commands"
	"recipe-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Schedule a recipe
// @Description Put a recipe on the calendar and plan its cooking reminders
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScheduleRequest true "Create schedule request"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /schedules [post]
func (h *ScheduleHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
		return
	}
	var req reqdto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), userID, in)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, result.ScheduleID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Location", "/api/schedules/"+result.ScheduleID.String())
	c.JSON(http.StatusCreated, resdto.FromScheduleView(view).WithDispatch(result))
}

// @Summary Get schedule
// @Description Get one of the caller's schedules with its pending reminders
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	userID, id, ok := h.ownedScheduleParams(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary List schedules
// @Description List the caller's schedules by date with a TODAY/UPCOMING/PAST status
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param include_completed query bool false "Include completed schedules"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ScheduleListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
		return
	}
	var query reqdto.ListSchedulesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	var cursor *queries.Cursor
	if query.After != "" {
		cursor = &queries.Cursor{After: query.After}
	}

	filter := queries.ScheduleListFilter{IncludeCompleted: query.IncludeCompleted}
	items, next, err := h.q.ListByUser(c.Request.Context(), userID, filter, cursor, query.Limit)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleList(items, next))
}

// @Summary Reschedule
// @Description Move a schedule to another date; pending reminders are replaced
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Param request body reqdto.RescheduleRequest true "Reschedule request"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /schedules/{id} [patch]
func (h *ScheduleHandler) Reschedule(c *gin.Context) {
	userID, id, ok := h.ownedScheduleParams(c)
	if !ok {
		return
	}
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	date, err := req.Date()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	result, err := h.cmds.Reschedule(c.Request.Context(), userID, id, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view).WithDispatch(result))
}

// @Summary Mark cooked
// @Description Mark a schedule completed and cancel its remaining reminders
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} resdto.CompleteScheduleResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /schedules/{id}/complete [post]
func (h *ScheduleHandler) Complete(c *gin.Context) {
	userID, id, ok := h.ownedScheduleParams(c)
	if !ok {
		return
	}
	result, err := h.cmds.MarkCompleted(c.Request.Context(), userID, id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCompleteResult(result))
}

// @Summary Delete schedule
// @Description Delete a schedule together with its reminders
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Schedule ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(c *gin.Context) {
	userID, id, ok := h.ownedScheduleParams(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), userID, id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Preview reminders
// @Description Show the reminders a schedule on this date would get, without saving anything
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param recipe_name query string false "Recipe name used in reminder text"
// @Success 200 {object} resdto.PreviewResponse
// @Failure 400 {object} httperr.Response
// @Router /schedules/preview [get]
func (h *ScheduleHandler) Preview(c *gin.Context) {
	var query reqdto.PreviewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	date, err := query.ParsedDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}
	name := query.RecipeName
	if name == "" {
		name = "your recipe"
	}

	preview, err := h.q.Preview(c.Request.Context(), name, date)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPreview(preview))
}

func (h *ScheduleHandler) ownedScheduleParams(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, msgUnauthorized, nil)
		return uuid.Nil, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidID, nil)
		return uuid.Nil, uuid.Nil, false
	}
	return userID, id, true
}
