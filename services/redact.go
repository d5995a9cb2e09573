package services

import (
	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/utils"
	"github.com/shopspring/decimal"
)

// BuildUserView projects a user record by the viewer's capability set.
// Personal fields need the personal capability, the hourly rate needs the
// financial one. A viewer always has full visibility over their own record.
func BuildUserView(user models.User, caps models.Capabilities, viewerUUID string) dto.UserView {
	if user.UUID == viewerUUID {
		caps.Personal = true
		caps.Financial = true
	}

	view := dto.UserView{
		UUID:     user.UUID,
		Username: user.Username,
		Email:    user.Email,
		Active:   user.Active,
		AuthUUID: user.AuthUUID,
		Type:     user.Auth.Type,
	}

	if caps.Personal {
		cpf, name, phone := user.CPF, user.Name, user.Phone
		view.CPF = &cpf
		view.Name = &name
		view.Phone = &phone
	}

	if caps.Financial && user.HourlyRate != nil {
		rate := utils.FormatBRL(*user.HourlyRate)
		view.HourlyRate = &rate
	}

	return view
}

// BuildTaskView renders a task with boundary formatting applied
func BuildTaskView(task models.Task) dto.TaskView {
	view := dto.TaskView{
		UUID:        task.UUID,
		Type:        string(task.Type),
		Description: task.Description,
		BeginDate:   utils.FormatDateTime(task.BeginDate),
		EndDate:     utils.FormatDateTime(task.EndDate),
		Revenue:     utils.FormatBRL(task.Revenue),
		StatusUUID:  task.StatusUUID,
		UserUUID:    task.UserUUID,
		ProjectUUID: task.ProjectUUID,
		BudgetUUID:  task.BudgetUUID,
	}

	if task.HourlyRate != nil {
		view.HourlyRate = utils.FormatBRL(*task.HourlyRate)
	} else {
		view.HourlyRate = utils.FormatBRL(decimal.Zero)
	}
	if task.Cost != nil {
		view.Cost = utils.FormatBRL(*task.Cost)
	} else {
		view.Cost = utils.FormatBRL(decimal.Zero)
	}

	return view
}
