package services

import (
	"testing"
	"time"

	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func allCaps() models.Capabilities {
	return models.Capabilities{Admin: true, Project: true, Personal: true, Financial: true}
}

func TestValuateTask_ExpenseKind(t *testing.T) {
	tests := []struct {
		name           string
		task           models.Task
		wantPlanned    string
		wantPlannedRev string
		wantActual     string
	}{
		{
			name: "no child expenses yields zero actual cost",
			task: models.Task{
				Type:    models.TaskTypeExpense,
				Cost:    decPtr("150.00"),
				Revenue: dec("50.00"),
			},
			wantPlanned:    "150",
			wantPlannedRev: "50",
			wantActual:     "0",
		},
		{
			name: "child expenses sum into actual cost",
			task: models.Task{
				Type:    models.TaskTypeExpense,
				Cost:    decPtr("100.00"),
				Revenue: dec("20.00"),
				Expenses: []models.Expense{
					{Cost: dec("30.50")},
					{Cost: dec("19.50")},
				},
			},
			wantPlanned:    "100",
			wantPlannedRev: "20",
			wantActual:     "50",
		},
		{
			name: "missing planned cost defaults to zero",
			task: models.Task{
				Type:    models.TaskTypeExpense,
				Revenue: dec("10.00"),
			},
			wantPlanned:    "0",
			wantPlannedRev: "10",
			wantActual:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valuation, err := ValuateTask(tt.task)
			require.NoError(t, err)

			assert.True(t, dec(tt.wantPlanned).Equal(valuation.PlannedCost), "planned cost: %s", valuation.PlannedCost)
			assert.True(t, dec(tt.wantPlannedRev).Equal(valuation.PlannedRevenue), "planned revenue: %s", valuation.PlannedRevenue)
			assert.True(t, dec(tt.wantActual).Equal(valuation.ActualCost), "actual cost: %s", valuation.ActualCost)
			assert.True(t, valuation.PlannedRevenue.Add(valuation.PlannedCost).Equal(valuation.PlannedTotal))
		})
	}
}

func TestValuateTask_ActivityKind(t *testing.T) {
	begin := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	task := models.Task{
		Type:       models.TaskTypeActivity,
		BeginDate:  begin,
		EndDate:    begin.Add(4 * time.Hour),
		HourlyRate: decPtr("100.00"),
		Revenue:    dec("25.00"),
		Activities: []models.Activity{
			{
				BeginDate:  begin,
				EndDate:    begin.Add(90 * time.Minute),
				HourlyRate: dec("80.00"),
			},
		},
	}

	valuation, err := ValuateTask(task)
	require.NoError(t, err)

	// planned cost = 4h * 100, planned revenue = 4h * 25
	assert.True(t, dec("400").Equal(valuation.PlannedCost), "planned cost: %s", valuation.PlannedCost)
	assert.True(t, dec("100").Equal(valuation.PlannedRevenue), "planned revenue: %s", valuation.PlannedRevenue)
	assert.True(t, dec("500").Equal(valuation.PlannedTotal), "planned total: %s", valuation.PlannedTotal)
	// actual cost = 1.5h * 80
	assert.True(t, dec("120").Equal(valuation.ActualCost), "actual cost: %s", valuation.ActualCost)
}

func TestValuateTask_NilRateDefaultsToZero(t *testing.T) {
	begin := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	task := models.Task{
		Type:      models.TaskTypeActivity,
		BeginDate: begin,
		EndDate:   begin.Add(2 * time.Hour),
		Revenue:   dec("10.00"),
	}

	valuation, err := ValuateTask(task)
	require.NoError(t, err)

	assert.True(t, valuation.PlannedCost.IsZero())
	assert.True(t, dec("20").Equal(valuation.PlannedRevenue))
	assert.True(t, valuation.ActualCost.IsZero())
}

func TestValuateTask_SubHourPrecision(t *testing.T) {
	begin := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	// 45 minutes at R$ 100/h
	task := models.Task{
		Type:       models.TaskTypeActivity,
		BeginDate:  begin,
		EndDate:    begin.Add(45 * time.Minute),
		HourlyRate: decPtr("100.00"),
		Revenue:    decimal.Zero,
	}

	valuation, err := ValuateTask(task)
	require.NoError(t, err)

	assert.True(t, dec("75").Equal(valuation.PlannedCost), "planned cost: %s", valuation.PlannedCost)
}

func TestValuateTask_UnknownKindRejected(t *testing.T) {
	_, err := ValuateTask(models.Task{Type: "Milestone"})

	var appErr *errs.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.IsType(errs.ErrorTypeValidation))
}

func TestRollupProject_BudgetScenario(t *testing.T) {
	// Budget with one Activity task 01/01 08:00-12:00 at R$ 100,00/h,
	// no live tasks, no transactions.
	begin := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	budgetUUID := "b-1"

	project := models.Project{
		UUID:       "p-1",
		Name:       "Website",
		Active:     true,
		BudgetUUID: budgetUUID,
		Budget: models.Budget{
			UUID: budgetUUID,
			Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Tasks: []models.Task{
				{
					Type:       models.TaskTypeActivity,
					BeginDate:  begin,
					EndDate:    begin.Add(4 * time.Hour),
					HourlyRate: decPtr("100.00"),
					Revenue:    decimal.Zero,
					BudgetUUID: &budgetUUID,
				},
			},
		},
	}

	rollup, err := RollupProject(project, allCaps())
	require.NoError(t, err)

	require.NotNil(t, rollup.PrevCost)
	assert.Equal(t, "R$ 400,00", *rollup.PrevCost)
	require.NotNil(t, rollup.Total)
	assert.Equal(t, "R$ 0,00", *rollup.Total)
	require.NotNil(t, rollup.CurrentRevenue)
	assert.Equal(t, "R$ 0,00", *rollup.CurrentRevenue)
	assert.True(t, rollup.Financial)
}

func TestRollupProject_TransactionTotals(t *testing.T) {
	project := models.Project{
		UUID: "p-1",
		Transactions: []models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: dec("1000.00"), Date: time.Now()},
			{Type: models.TransactionTypeIncome, Amount: dec("500.00"), Date: time.Now()},
			{Type: models.TransactionTypeExpense, Amount: dec("300.00"), Date: time.Now()},
		},
	}

	rollup, err := RollupProject(project, allCaps())
	require.NoError(t, err)

	require.NotNil(t, rollup.CurrentIncome)
	assert.Equal(t, "R$ 1.500,00", *rollup.CurrentIncome)
	require.NotNil(t, rollup.CurrentExpense)
	assert.Equal(t, "R$ 300,00", *rollup.CurrentExpense)
	require.NotNil(t, rollup.CurrentRevenue)
	assert.Equal(t, "R$ 1.200,00", *rollup.CurrentRevenue)
}

func TestRollupProject_DateSpan(t *testing.T) {
	taskBegin := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	taskEnd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	transactionDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	project := models.Project{
		Tasks: []models.Task{
			{
				Type:      models.TaskTypeActivity,
				BeginDate: taskBegin,
				EndDate:   taskEnd,
				Revenue:   decimal.Zero,
			},
		},
		Transactions: []models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: dec("1.00"), Date: transactionDate},
		},
	}

	rollup, err := RollupProject(project, allCaps())
	require.NoError(t, err)

	require.NotNil(t, rollup.BeginDate)
	assert.Equal(t, "10/01/24 00:00", *rollup.BeginDate)
	require.NotNil(t, rollup.EndDate)
	assert.Equal(t, "15/03/24 00:00", *rollup.EndDate)
}

func TestRollupProject_EmptyTreeHasNilSpan(t *testing.T) {
	rollup, err := RollupProject(models.Project{UUID: "p-1"}, allCaps())
	require.NoError(t, err)

	assert.Nil(t, rollup.BeginDate)
	assert.Nil(t, rollup.EndDate)
}

func TestRollupProject_RedactsWithoutFinancialCapability(t *testing.T) {
	begin := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	project := models.Project{
		UUID: "p-1",
		Name: "Website",
		Tasks: []models.Task{
			{
				Type:       models.TaskTypeActivity,
				BeginDate:  begin,
				EndDate:    begin.Add(4 * time.Hour),
				HourlyRate: decPtr("100.00"),
				Revenue:    dec("25.00"),
			},
		},
		Transactions: []models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: dec("10.00"), Date: begin},
		},
	}

	rollup, err := RollupProject(project, models.Capabilities{Project: true})
	require.NoError(t, err)

	assert.False(t, rollup.Financial)
	assert.Nil(t, rollup.PrevTotal)
	assert.Nil(t, rollup.PrevCost)
	assert.Nil(t, rollup.PrevRevenue)
	assert.Nil(t, rollup.Total)
	assert.Nil(t, rollup.Cost)
	assert.Nil(t, rollup.Revenue)
	assert.Nil(t, rollup.CurrentExpense)
	assert.Nil(t, rollup.CurrentIncome)
	assert.Nil(t, rollup.CurrentRevenue)

	// the date span survives redaction
	assert.NotNil(t, rollup.BeginDate)
	assert.NotNil(t, rollup.EndDate)
	assert.Equal(t, "Website", rollup.Name)
}

func TestRollupProject_ActualCostFromChildren(t *testing.T) {
	begin := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)

	project := models.Project{
		Tasks: []models.Task{
			{
				Type:    models.TaskTypeExpense,
				Cost:    decPtr("500.00"),
				Revenue: dec("100.00"),
				Expenses: []models.Expense{
					{Cost: dec("120.00"), Date: begin},
					{Cost: dec("80.00"), Date: begin},
				},
			},
			{
				Type:       models.TaskTypeActivity,
				BeginDate:  begin,
				EndDate:    begin.Add(2 * time.Hour),
				HourlyRate: decPtr("50.00"),
				Revenue:    decimal.Zero,
				Activities: []models.Activity{
					{BeginDate: begin, EndDate: begin.Add(30 * time.Minute), HourlyRate: dec("60.00")},
				},
			},
		},
	}

	rollup, err := RollupProject(project, allCaps())
	require.NoError(t, err)

	// actual cost = 120 + 80 + 0.5h * 60 = 230
	require.NotNil(t, rollup.Cost)
	assert.Equal(t, "R$ 230,00", *rollup.Cost)
	// planned figures: expense task 100+500, activity task 2h*50
	require.NotNil(t, rollup.Total)
	assert.Equal(t, "R$ 700,00", *rollup.Total)
}

func TestRollupProject_UnknownTransactionKindIgnoredInTotals(t *testing.T) {
	// Transfer/Loan/Adjustment/Refund entries are valid kinds but only
	// Income and Expense feed the realized totals.
	project := models.Project{
		Transactions: []models.Transaction{
			{Type: models.TransactionTypeIncome, Amount: dec("100.00"), Date: time.Now()},
			{Type: models.TransactionTypeTransfer, Amount: dec("999.00"), Date: time.Now()},
			{Type: models.TransactionTypeLoan, Amount: dec("999.00"), Date: time.Now()},
		},
	}

	rollup, err := RollupProject(project, allCaps())
	require.NoError(t, err)

	require.NotNil(t, rollup.CurrentIncome)
	assert.Equal(t, "R$ 100,00", *rollup.CurrentIncome)
	require.NotNil(t, rollup.CurrentExpense)
	assert.Equal(t, "R$ 0,00", *rollup.CurrentExpense)
}
