package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"gorm.io/gorm"
)

// TaskService handles business logic for individual live tasks
type TaskService struct {
	taskRepo    *repositories.TaskRepository
	projectRepo *repositories.ProjectRepository
	statusRepo  *repositories.StatusRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo:    repositories.NewTaskRepository(),
		projectRepo: repositories.NewProjectRepository(),
		statusRepo:  repositories.NewStatusRepository(),
	}
}

// GetTask retrieves a single task rendered for the boundary
func (s *TaskService) GetTask(uuid string) (dto.TaskView, error) {
	task, err := s.findTask(uuid)
	if err != nil {
		return dto.TaskView{}, err
	}
	return BuildTaskView(task), nil
}

// CreateTask registers a single live task; requires the project capability
func (s *TaskService) CreateTask(req dto.CreateTaskRequest, caps models.Capabilities) (dto.TaskView, error) {
	if !caps.Project {
		return dto.TaskView{}, errs.Authorization("user lacks permission to create tasks")
	}

	if _, err := s.projectRepo.FindByUUID(req.ProjectUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TaskView{}, errs.NotFound("project not found")
		}
		return dto.TaskView{}, errs.Server("failed to look up project", err)
	}
	if err := s.checkStatus(req.StatusUUID); err != nil {
		return dto.TaskView{}, err
	}

	task, err := taskFromRow(dto.TaskRow{
		Type:        req.Type,
		Description: req.Description,
		BeginDate:   req.BeginDate,
		EndDate:     req.EndDate,
		HourlyRate:  req.HourlyRate,
		Cost:        req.Cost,
		Revenue:     req.Revenue,
		StatusUUID:  req.StatusUUID,
		UserUUID:    req.UserUUID,
	}, req.ProjectUUID, nil)
	if err != nil {
		return dto.TaskView{}, err
	}

	task, err = s.taskRepo.Create(task)
	if err != nil {
		return dto.TaskView{}, errs.Server("failed to create task", err)
	}
	return BuildTaskView(task), nil
}

// UpdateTask modifies an existing task; requires the project capability
func (s *TaskService) UpdateTask(req dto.UpdateTaskRequest, caps models.Capabilities) error {
	if !caps.Project {
		return errs.Authorization("user lacks permission to edit tasks")
	}

	existing, err := s.findTask(req.UUID)
	if err != nil {
		return err
	}
	if err := s.checkStatus(req.StatusUUID); err != nil {
		return err
	}

	task, err := taskFromRow(dto.TaskRow{
		UUID:        req.UUID,
		Type:        req.Type,
		Description: req.Description,
		BeginDate:   req.BeginDate,
		EndDate:     req.EndDate,
		HourlyRate:  req.HourlyRate,
		Cost:        req.Cost,
		Revenue:     req.Revenue,
		StatusUUID:  req.StatusUUID,
		UserUUID:    req.UserUUID,
	}, existing.ProjectUUID, existing.BudgetUUID)
	if err != nil {
		return err
	}
	task.CreatedAt = existing.CreatedAt

	if err := s.taskRepo.Update(task); err != nil {
		return errs.Server("failed to update task", err)
	}
	return nil
}

// DeleteTask removes a task with its expenses and activities; requires the
// project capability
func (s *TaskService) DeleteTask(uuid string, caps models.Capabilities) error {
	if !caps.Project {
		return errs.Authorization("user lacks permission to delete tasks")
	}

	task, err := s.findTask(uuid)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(task.UUID); err != nil {
		return errs.Server("failed to delete task", err)
	}
	return nil
}

func (s *TaskService) findTask(uuid string) (models.Task, error) {
	task, err := s.taskRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Task{}, errs.NotFound("task not found")
		}
		return models.Task{}, errs.Server("failed to look up task", err)
	}
	return task, nil
}

func (s *TaskService) checkStatus(uuid string) error {
	if _, err := s.statusRepo.FindByUUID(uuid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("status not found")
		}
		return errs.Server("failed to look up status", err)
	}
	return nil
}
