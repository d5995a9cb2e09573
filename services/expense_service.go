package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"github.com/gestor-backend/utils"
	"gorm.io/gorm"
)

// ExpenseService handles business logic for actual cost entries
type ExpenseService struct {
	expenseRepo  *repositories.ExpenseRepository
	taskRepo     *repositories.TaskRepository
	supplierRepo *repositories.SupplierRepository
}

// NewExpenseService creates a new expense service instance
func NewExpenseService() *ExpenseService {
	return &ExpenseService{
		expenseRepo:  repositories.NewExpenseRepository(),
		taskRepo:     repositories.NewTaskRepository(),
		supplierRepo: repositories.NewSupplierRepository(),
	}
}

// ListExpenses retrieves expenses matching the filter
func (s *ExpenseService) ListExpenses(filter dto.ExpenseFilter) ([]dto.ExpenseView, error) {
	repoFilter := repositories.ExpenseFilter{
		Description:  filter.Description,
		SupplierUUID: filter.SupplierUUID,
		TaskUUID:     filter.TaskUUID,
	}

	if filter.CostMin != nil {
		min, err := utils.ParseBRL(*filter.CostMin)
		if err != nil {
			return nil, err
		}
		repoFilter.CostMin = &min
	}
	if filter.CostMax != nil {
		max, err := utils.ParseBRL(*filter.CostMax)
		if err != nil {
			return nil, err
		}
		repoFilter.CostMax = &max
	}
	if filter.DateMin != nil {
		min, err := utils.ParseDateTime(*filter.DateMin)
		if err != nil {
			return nil, err
		}
		repoFilter.DateMin = &min
	}
	if filter.DateMax != nil {
		max, err := utils.ParseDateTime(*filter.DateMax)
		if err != nil {
			return nil, err
		}
		repoFilter.DateMax = &max
	}

	expenses, err := s.expenseRepo.Find(repoFilter)
	if err != nil {
		return nil, errs.Server("failed to retrieve expenses", err)
	}

	views := make([]dto.ExpenseView, 0, len(expenses))
	for _, expense := range expenses {
		views = append(views, buildExpenseView(expense))
	}
	return views, nil
}

// CreateExpense records a new actual cost against an expense task
func (s *ExpenseService) CreateExpense(req dto.CreateExpenseRequest) (dto.ExpenseView, error) {
	expense, err := s.expenseFromRequest("", req.Description, req.Cost, req.Date, req.SupplierUUID, req.TaskUUID)
	if err != nil {
		return dto.ExpenseView{}, err
	}

	expense, err = s.expenseRepo.Create(expense)
	if err != nil {
		return dto.ExpenseView{}, errs.Server("failed to create expense", err)
	}
	return buildExpenseView(expense), nil
}

// UpdateExpense modifies an actual cost entry
func (s *ExpenseService) UpdateExpense(req dto.UpdateExpenseRequest) error {
	existing, err := s.findExpense(req.UUID)
	if err != nil {
		return err
	}

	expense, err := s.expenseFromRequest(req.UUID, req.Description, req.Cost, req.Date, req.SupplierUUID, req.TaskUUID)
	if err != nil {
		return err
	}
	expense.CreatedAt = existing.CreatedAt

	if err := s.expenseRepo.Update(expense); err != nil {
		return errs.Server("failed to update expense", err)
	}
	return nil
}

// DeleteExpense removes an actual cost entry
func (s *ExpenseService) DeleteExpense(uuid string) error {
	if _, err := s.findExpense(uuid); err != nil {
		return err
	}
	if err := s.expenseRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete expense", err)
	}
	return nil
}

func (s *ExpenseService) findExpense(uuid string) (models.Expense, error) {
	expense, err := s.expenseRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Expense{}, errs.NotFound("expense not found")
		}
		return models.Expense{}, errs.Server("failed to look up expense", err)
	}
	return expense, nil
}

// expenseFromRequest validates the cost, its parent task and the optional
// supplier. Expenses can only hang off expense-kind tasks.
func (s *ExpenseService) expenseFromRequest(uuid, description, cost, date string, supplierUUID *string, taskUUID string) (models.Expense, error) {
	amount, err := utils.ParseBRL(cost)
	if err != nil {
		return models.Expense{}, err
	}

	when, err := utils.ParseDateTime(date)
	if err != nil {
		return models.Expense{}, err
	}

	task, err := s.taskRepo.FindByUUID(taskUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Expense{}, errs.NotFound("task not found")
		}
		return models.Expense{}, errs.Server("failed to look up task", err)
	}
	if task.Type != models.TaskTypeExpense {
		return models.Expense{}, errs.Validation("expenses can only be recorded against expense tasks")
	}

	if supplierUUID != nil {
		if _, err := s.supplierRepo.FindByUUID(*supplierUUID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Expense{}, errs.NotFound("supplier not found")
			}
			return models.Expense{}, errs.Server("failed to look up supplier", err)
		}
	}

	return models.Expense{
		UUID:         uuid,
		Description:  description,
		Cost:         amount,
		Date:         when,
		SupplierUUID: supplierUUID,
		TaskUUID:     taskUUID,
	}, nil
}

func buildExpenseView(expense models.Expense) dto.ExpenseView {
	return dto.ExpenseView{
		UUID:         expense.UUID,
		Description:  expense.Description,
		Cost:         utils.FormatBRL(expense.Cost),
		Date:         utils.FormatDateTime(expense.Date),
		SupplierUUID: expense.SupplierUUID,
		TaskUUID:     expense.TaskUUID,
	}
}
