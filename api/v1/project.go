package v1

import (
	"net/http"
	"strconv"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/services"
	"github.com/gin-gonic/gin"
)

// ListProjects retrieves projects with their financial rollup, projected by
// the caller's capability set
func ListProjects(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	filter := repositories.ProjectFilter{
		UUID:        c.Query("uuid"),
		Name:        c.Query("name"),
		Description: c.Query("description"),
		ClientUUID:  c.Query("clientUuid"),
		StatusUUID:  c.Query("statusUuid"),
	}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err == nil {
			filter.Active = &active
		}
	}

	projects, err := services.NewProjectService().ListProjects(filter, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"projects": projects,
	})
}

// CreateProject handles project registration
func CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	project, err := services.NewProjectService().CreateProject(req, caps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"project": project,
	})
}

// UpdateProject handles project changes
func UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewProjectService().UpdateProject(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project updated successfully",
	})
}

// DeleteProject handles project removal with its budget and tasks
func DeleteProject(c *gin.Context) {
	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewProjectService().DeleteProject(c.Param("uuid"), caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

// GetBudget retrieves a budget snapshot with its planned tasks
func GetBudget(c *gin.Context) {
	budget, err := services.NewProjectService().GetBudget(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"budget": budget,
	})
}

// UpdateBudget reconciles the budget's task set against the submitted plan
func UpdateBudget(c *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewProjectService().UpdateBudget(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Budget updated successfully",
	})
}

// ListProjectTasks retrieves a project's live tasks
func ListProjectTasks(c *gin.Context) {
	tasks, err := services.NewProjectService().ListLiveTasks(c.Param("uuid"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"tasks":  tasks,
	})
}

// UpdateProjectTasks reconciles a project's live task set against the
// submitted plan
func UpdateProjectTasks(c *gin.Context) {
	var req dto.UpdateProjectTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	caps, _, ok := callerCapabilities(c)
	if !ok {
		return
	}

	if err := services.NewProjectService().UpdateLiveTasks(req, caps); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tasks updated successfully",
	})
}
