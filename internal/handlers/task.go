package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/PremjitDas/Task-Management-App/internal/auth"
	dom "github.com/PremjitDas/Task-Management-App/internal/domain"
	"github.com/PremjitDas/Task-Management-App/internal/dto"

	"github.com/gin-gonic/gin"
)

// TaskService is the slice of the task service the handlers use.
type TaskService interface {
	Add(ctx context.Context, userID int64, title, description string) (dom.Task, error)
	List(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, title, description string) (dom.Task, error)
	Toggle(ctx context.Context, userID, id int64) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) (dom.Task, error)
}

type TaskHandler struct {
	svc TaskService
}

func NewTaskHandler(svc TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Add godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.AddTaskRequest  true  "Task body"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /tasks/add [post]
func (h *TaskHandler) Add(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		rejectUnauthenticated(c)
		return
	}
	var req dto.AddTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(http.StatusBadRequest, "title is required"))
		return
	}
	t, err := h.svc.Add(c.Request.Context(), u.ID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(http.StatusCreated, dto.TaskToResponse(t), "Task created successfully"))
}

// List godoc
// @Summary      List the caller's tasks, newest first
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      500  {object}  dto.Envelope
// @Router       /tasks/all [get]
func (h *TaskHandler) List(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		rejectUnauthenticated(c)
		return
	}
	list, err := h.svc.List(c.Request.Context(), u.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.TasksToResponses(list), "Tasks retrieved successfully"))
}

// Update godoc
// @Summary      Replace a task's title and description
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        taskId  path  int  true  "Task ID"
// @Param        body    body  dto.UpdateTaskRequest  true  "Replacement fields"
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /tasks/update/{taskId} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		rejectUnauthenticated(c)
		return
	}
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(http.StatusBadRequest, "all fields are required"))
		return
	}
	t, err := h.svc.Update(c.Request.Context(), u.ID, id, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.TaskToResponse(t), "Task updated successfully"))
}

// Toggle godoc
// @Summary      Flip a task's completion flag
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        taskId  path  int  true  "Task ID"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      403  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /tasks/toggle/{taskId} [put]
func (h *TaskHandler) Toggle(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		rejectUnauthenticated(c)
		return
	}
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	t, err := h.svc.Toggle(c.Request.Context(), u.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.ToggleTaskResponse{
		Task:  dto.TaskToResponse(t),
		State: t.StateName(),
	}, "Task marked "+t.StateName()))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Security     CookieAuth
// @Param        taskId  path  int  true  "Task ID"
// @Success      200  {object}  dto.Envelope
// @Failure      401  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /tasks/delete/{taskId} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	u, ok := auth.CurrentUser(c)
	if !ok {
		rejectUnauthenticated(c)
		return
	}
	id, ok := parseTaskID(c)
	if !ok {
		return
	}
	t, err := h.svc.Delete(c.Request.Context(), u.ID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(http.StatusOK, dto.TaskToResponse(t), "Task deleted successfully"))
}

func parseTaskID(c *gin.Context) (int64, bool) {
	raw := c.Param("taskId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.Fail(http.StatusBadRequest, "invalid task id"))
		return 0, false
	}
	return id, true
}

func rejectUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, dto.Fail(http.StatusUnauthorized, "unauthorized request"))
}
