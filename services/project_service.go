package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects, budgets and their task sets
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	taskRepo    *repositories.TaskRepository
	clientRepo  *repositories.ClientRepository
	statusRepo  *repositories.StatusRepository
	userRepo    *repositories.UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
		taskRepo:    repositories.NewTaskRepository(),
		clientRepo:  repositories.NewClientRepository(),
		statusRepo:  repositories.NewStatusRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// ListProjects retrieves projects with their financial rollup, projected by
// the viewer's capability set
func (s *ProjectService) ListProjects(filter repositories.ProjectFilter, caps models.Capabilities) ([]dto.ProjectRollup, error) {
	projects, err := s.projectRepo.FindTree(filter)
	if err != nil {
		return nil, errs.Server("failed to retrieve projects", err)
	}

	rollups := make([]dto.ProjectRollup, 0, len(projects))
	for _, project := range projects {
		rollup, err := RollupProject(project, caps)
		if err != nil {
			return nil, err
		}
		rollups = append(rollups, rollup)
	}
	return rollups, nil
}

// CreateProject registers a project and its empty budget snapshot atomically;
// requires the project capability
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest, caps models.Capabilities) (models.Project, error) {
	if !caps.Project {
		return models.Project{}, errs.Authorization("user lacks permission to create projects")
	}

	if err := s.checkReferences(req.ClientUUID, req.StatusUUID); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		ClientUUID:  req.ClientUUID,
		StatusUUID:  req.StatusUUID,
		BudgetUUID:  uuid.NewString(),
	}

	project, err := s.projectRepo.CreateWithBudget(project)
	if err != nil {
		return models.Project{}, errs.Server("failed to create project", err)
	}
	return project, nil
}

// UpdateProject modifies an existing project; requires the project capability
func (s *ProjectService) UpdateProject(req dto.UpdateProjectRequest, caps models.Capabilities) error {
	project, err := s.findProject(req.UUID)
	if err != nil {
		return err
	}

	if !caps.Project {
		return errs.Authorization("user lacks permission to edit projects")
	}

	if err := s.checkReferences(req.ClientUUID, req.StatusUUID); err != nil {
		return err
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Active = req.Active
	project.ClientUUID = req.ClientUUID
	project.StatusUUID = req.StatusUUID

	if err := s.projectRepo.Update(project); err != nil {
		return errs.Server("failed to update project", err)
	}
	return nil
}

// DeleteProject removes a project together with its budget and tasks
func (s *ProjectService) DeleteProject(projectUUID string, caps models.Capabilities) error {
	if !caps.Project {
		return errs.Authorization("user lacks permission to delete projects")
	}

	project, err := s.findProject(projectUUID)
	if err != nil {
		return err
	}

	if err := s.projectRepo.DeleteWithBudget(project); err != nil {
		return errs.Server("failed to delete project", err)
	}
	return nil
}

// GetBudget retrieves a budget snapshot with its planned tasks
func (s *ProjectService) GetBudget(budgetUUID string) (dto.BudgetView, error) {
	tasks, err := s.taskRepo.FindByBudget(budgetUUID)
	if err != nil {
		return dto.BudgetView{}, errs.Server("failed to retrieve budget tasks", err)
	}

	budget, err := s.findBudget(budgetUUID)
	if err != nil {
		return dto.BudgetView{}, err
	}

	view := dto.BudgetView{
		UUID:  budget.UUID,
		Date:  utils.FormatDateTime(budget.Date),
		Tasks: make([]dto.TaskView, 0, len(tasks)),
	}
	for _, task := range tasks {
		view.Tasks = append(view.Tasks, BuildTaskView(task))
	}
	return view, nil
}

// UpdateBudget reconciles the budget's snapshot task set against the
// incoming one; requires the project capability
func (s *ProjectService) UpdateBudget(req dto.UpdateBudgetRequest, caps models.Capabilities) error {
	if !caps.Project {
		return errs.Authorization("user lacks permission to edit budgets")
	}

	budget, err := s.findBudget(req.UUID)
	if err != nil {
		return err
	}

	project, err := s.projectRepo.FindByBudget(req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("budget is not attached to a project")
		}
		return errs.Server("failed to look up budget project", err)
	}

	date, err := utils.ParseDateTime(req.Date)
	if err != nil {
		return err
	}

	budgetUUID := budget.UUID
	incoming, err := s.tasksFromRows(req.Tasks, project.UUID, &budgetUUID)
	if err != nil {
		return err
	}

	// snapshot the stored set before any write so deletes are computed
	// against pre-update state
	existing, err := s.taskRepo.FindByBudget(budget.UUID)
	if err != nil {
		return errs.Server("failed to retrieve budget tasks", err)
	}

	diff := ReconcileTasks(existing, incoming)
	if err := s.taskRepo.ApplyReconciliation(diff.ToCreate, diff.ToUpdate, diff.ToDelete); err != nil {
		return errs.Server("failed to apply budget tasks", err)
	}

	budget.Date = date
	if err := s.projectRepo.UpdateBudget(budget); err != nil {
		return errs.Server("failed to update budget", err)
	}
	return nil
}

// ListLiveTasks retrieves a project's live tasks
func (s *ProjectService) ListLiveTasks(projectUUID string) ([]dto.TaskView, error) {
	tasks, err := s.taskRepo.FindLiveByProject(projectUUID)
	if err != nil {
		return nil, errs.Server("failed to retrieve tasks", err)
	}

	views := make([]dto.TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, BuildTaskView(task))
	}
	return views, nil
}

// UpdateLiveTasks reconciles a project's live task set against the incoming
// one; requires the project capability
func (s *ProjectService) UpdateLiveTasks(req dto.UpdateProjectTasksRequest, caps models.Capabilities) error {
	if !caps.Project {
		return errs.Authorization("user lacks permission to edit tasks")
	}

	if _, err := s.findProject(req.ProjectUUID); err != nil {
		return err
	}

	incoming, err := s.tasksFromRows(req.Tasks, req.ProjectUUID, nil)
	if err != nil {
		return err
	}

	existing, err := s.taskRepo.FindLiveByProject(req.ProjectUUID)
	if err != nil {
		return errs.Server("failed to retrieve tasks", err)
	}

	diff := ReconcileTasks(existing, incoming)
	if err := s.taskRepo.ApplyReconciliation(diff.ToCreate, diff.ToUpdate, diff.ToDelete); err != nil {
		return errs.Server("failed to apply tasks", err)
	}
	return nil
}

// findBudget looks up a budget snapshot, translating a missing row into NotFound
func (s *ProjectService) findBudget(budgetUUID string) (models.Budget, error) {
	var budget models.Budget
	if err := s.projectRepo.FindBudget(budgetUUID, &budget); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Budget{}, errs.NotFound("budget not found")
		}
		return models.Budget{}, errs.Server("failed to look up budget", err)
	}
	return budget, nil
}

// findProject looks up a project, translating a missing row into NotFound
func (s *ProjectService) findProject(projectUUID string) (models.Project, error) {
	project, err := s.projectRepo.FindByUUID(projectUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, errs.NotFound("project not found")
		}
		return models.Project{}, errs.Server("failed to look up project", err)
	}
	return project, nil
}

// checkReferences verifies that the referenced client and status exist
func (s *ProjectService) checkReferences(clientUUID, statusUUID string) error {
	if _, err := s.clientRepo.FindByUUID(clientUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("client not found")
		}
		return errs.Server("failed to look up client", err)
	}
	if _, err := s.statusRepo.FindByUUID(statusUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("status not found")
		}
		return errs.Server("failed to look up status", err)
	}
	return nil
}

// tasksFromRows parses and validates incoming task rows into model tasks
func (s *ProjectService) tasksFromRows(rows []dto.TaskRow, projectUUID string, budgetUUID *string) ([]models.Task, error) {
	tasks := make([]models.Task, 0, len(rows))
	for _, row := range rows {
		task, err := taskFromRow(row, projectUUID, budgetUUID)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// taskFromRow validates one task row: closed kind set, ordered dates, and
// the kind-specific required amount
func taskFromRow(row dto.TaskRow, projectUUID string, budgetUUID *string) (models.Task, error) {
	kind, err := models.ParseTaskType(row.Type)
	if err != nil {
		return models.Task{}, err
	}

	begin, err := utils.ParseDateTime(row.BeginDate)
	if err != nil {
		return models.Task{}, err
	}
	end, err := utils.ParseDateTime(row.EndDate)
	if err != nil {
		return models.Task{}, err
	}
	if begin.After(end) {
		return models.Task{}, errs.Validation("end date cannot precede begin date")
	}

	if kind == models.TaskTypeActivity && row.HourlyRate == nil {
		return models.Task{}, errs.Validation("hourly rate is required for activity tasks")
	}
	if kind == models.TaskTypeExpense && row.Cost == nil {
		return models.Task{}, errs.Validation("cost is required for expense tasks")
	}

	task := models.Task{
		UUID:        row.UUID,
		Type:        kind,
		Description: row.Description,
		BeginDate:   begin,
		EndDate:     end,
		StatusUUID:  row.StatusUUID,
		UserUUID:    row.UserUUID,
		ProjectUUID: projectUUID,
		BudgetUUID:  budgetUUID,
	}

	if row.HourlyRate != nil {
		rate, err := utils.ParseBRL(*row.HourlyRate)
		if err != nil {
			return models.Task{}, err
		}
		task.HourlyRate = &rate
	}
	if row.Cost != nil {
		cost, err := utils.ParseBRL(*row.Cost)
		if err != nil {
			return models.Task{}, err
		}
		task.Cost = &cost
	}

	revenue, err := utils.ParseBRL(row.Revenue)
	if err != nil {
		return models.Task{}, err
	}
	task.Revenue = revenue

	return task, nil
}
