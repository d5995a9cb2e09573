package services

import (
	"testing"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTaskRow() dto.TaskRow {
	rate := "R$ 100,00"
	return dto.TaskRow{
		Type:        "Activity",
		Description: "Frontend development",
		BeginDate:   "01/03/24 08:00",
		EndDate:     "01/03/24 12:00",
		HourlyRate:  &rate,
		Revenue:     "R$ 150,00",
		StatusUUID:  "5e0cb0bc-23b7-4f07-a3f4-17d10f2e09fb",
	}
}

func TestTaskFromRow_Activity(t *testing.T) {
	task, err := taskFromRow(validTaskRow(), "project-uuid", nil)
	require.NoError(t, err)

	assert.Equal(t, models.TaskTypeActivity, task.Type)
	assert.Equal(t, "project-uuid", task.ProjectUUID)
	assert.Nil(t, task.BudgetUUID)
	require.NotNil(t, task.HourlyRate)
	assert.True(t, task.HourlyRate.Equal(dec("100")))
	assert.True(t, task.Revenue.Equal(dec("150")))
}

func TestTaskFromRow_BudgetScope(t *testing.T) {
	budgetUUID := "budget-uuid"
	row := validTaskRow()
	cost := "R$ 1.250,00"
	row.Type = "Expense"
	row.HourlyRate = nil
	row.Cost = &cost

	task, err := taskFromRow(row, "project-uuid", &budgetUUID)
	require.NoError(t, err)

	require.NotNil(t, task.BudgetUUID)
	assert.Equal(t, budgetUUID, *task.BudgetUUID)
	require.NotNil(t, task.Cost)
	assert.True(t, task.Cost.Equal(dec("1250")))
}

func TestTaskFromRow_UnknownKind(t *testing.T) {
	row := validTaskRow()
	row.Type = "Milestone"

	_, err := taskFromRow(row, "project-uuid", nil)
	require.Error(t, err)

	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errs.ErrorTypeValidation))
}

func TestTaskFromRow_InvertedDates(t *testing.T) {
	row := validTaskRow()
	row.BeginDate = "02/03/24 08:00"
	row.EndDate = "01/03/24 08:00"

	_, err := taskFromRow(row, "project-uuid", nil)
	require.Error(t, err)
}

func TestTaskFromRow_ActivityNeedsRate(t *testing.T) {
	row := validTaskRow()
	row.HourlyRate = nil

	_, err := taskFromRow(row, "project-uuid", nil)
	require.Error(t, err)

	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errs.ErrorTypeValidation))
}

func TestTaskFromRow_ExpenseNeedsCost(t *testing.T) {
	row := validTaskRow()
	row.Type = "Expense"
	row.HourlyRate = nil
	row.Cost = nil

	_, err := taskFromRow(row, "project-uuid", nil)
	require.Error(t, err)
}
