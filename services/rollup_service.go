package services

import (
	"time"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/utils"
	"github.com/shopspring/decimal"
)

// millisecondsPerHour converts interval lengths to billable hours
var millisecondsPerHour = decimal.NewFromInt(3600000)

// TaskValuation holds the planned and actual figures of a single task.
// Planned figures come from the task's own fields; actual cost comes from
// its child expenses or activities. Actual revenue is never activity-derived:
// revenue is a flat per-task markup, so the planned figure doubles as the
// actual one at project level.
type TaskValuation struct {
	PlannedTotal   decimal.Decimal
	PlannedCost    decimal.Decimal
	PlannedRevenue decimal.Decimal
	ActualCost     decimal.Decimal
}

// durationHours returns the interval length in hours with millisecond precision
func durationHours(begin, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(end.Sub(begin).Milliseconds()).Div(millisecondsPerHour)
}

// ValuateTask computes the financial figures of one task by kind.
// Missing optional amounts count as zero; an unknown kind is rejected.
func ValuateTask(task models.Task) (TaskValuation, error) {
	switch task.Type {
	case models.TaskTypeExpense:
		cost := decimal.Zero
		if task.Cost != nil {
			cost = *task.Cost
		}

		actual := decimal.Zero
		for _, expense := range task.Expenses {
			actual = actual.Add(expense.Cost)
		}

		return TaskValuation{
			PlannedTotal:   task.Revenue.Add(cost),
			PlannedCost:    cost,
			PlannedRevenue: task.Revenue,
			ActualCost:     actual,
		}, nil

	case models.TaskTypeActivity:
		rate := decimal.Zero
		if task.HourlyRate != nil {
			rate = *task.HourlyRate
		}
		hours := durationHours(task.BeginDate, task.EndDate)

		actual := decimal.Zero
		for _, activity := range task.Activities {
			worked := durationHours(activity.BeginDate, activity.EndDate)
			actual = actual.Add(activity.HourlyRate.Mul(worked))
		}

		plannedCost := rate.Mul(hours)
		plannedRevenue := task.Revenue.Mul(hours)
		return TaskValuation{
			PlannedTotal:   plannedRevenue.Add(plannedCost),
			PlannedCost:    plannedCost,
			PlannedRevenue: plannedRevenue,
			ActualCost:     actual,
		}, nil
	}

	return TaskValuation{}, errs.Validation("invalid task type: " + string(task.Type))
}

// projectAggregate is the pre-projection rollup result, all amounts as decimals
type projectAggregate struct {
	prevTotal   decimal.Decimal
	prevCost    decimal.Decimal
	prevRevenue decimal.Decimal

	total   decimal.Decimal
	cost    decimal.Decimal
	revenue decimal.Decimal

	currentExpense decimal.Decimal
	currentIncome  decimal.Decimal

	beginDate *time.Time
	endDate   *time.Time
}

// projectDates collects every dated point of the project tree, skipping
// absent values
func projectDates(project models.Project) []time.Time {
	var dates []time.Time
	if !project.Budget.Date.IsZero() {
		dates = append(dates, project.Budget.Date)
	}

	collectTask := func(task models.Task) {
		dates = append(dates, task.BeginDate, task.EndDate)
		for _, expense := range task.Expenses {
			dates = append(dates, expense.Date)
		}
		for _, activity := range task.Activities {
			dates = append(dates, activity.BeginDate, activity.EndDate)
		}
	}

	for _, task := range project.Budget.Tasks {
		collectTask(task)
	}
	for _, task := range project.Tasks {
		collectTask(task)
	}
	for _, transaction := range project.Transactions {
		dates = append(dates, transaction.Date)
	}
	return dates
}

// aggregateProject rolls up budgeted, live and realized figures for one
// project tree. Empty child collections contribute zero, never an error.
func aggregateProject(project models.Project) (projectAggregate, error) {
	var agg projectAggregate

	for _, task := range project.Budget.Tasks {
		valuation, err := ValuateTask(task)
		if err != nil {
			return projectAggregate{}, err
		}
		agg.prevTotal = agg.prevTotal.Add(valuation.PlannedTotal)
		agg.prevCost = agg.prevCost.Add(valuation.PlannedCost)
		agg.prevRevenue = agg.prevRevenue.Add(valuation.PlannedRevenue)
	}

	for _, task := range project.Tasks {
		valuation, err := ValuateTask(task)
		if err != nil {
			return projectAggregate{}, err
		}
		agg.total = agg.total.Add(valuation.PlannedTotal)
		agg.cost = agg.cost.Add(valuation.ActualCost)
		agg.revenue = agg.revenue.Add(valuation.PlannedRevenue)
	}

	for _, transaction := range project.Transactions {
		switch transaction.Type {
		case models.TransactionTypeExpense:
			agg.currentExpense = agg.currentExpense.Add(transaction.Amount)
		case models.TransactionTypeIncome:
			agg.currentIncome = agg.currentIncome.Add(transaction.Amount)
		}
	}

	for _, date := range projectDates(project) {
		date := date
		if agg.beginDate == nil || date.Before(*agg.beginDate) {
			agg.beginDate = &date
		}
		if agg.endDate == nil || date.After(*agg.endDate) {
			agg.endDate = &date
		}
	}

	return agg, nil
}

// RollupProject computes the aggregate financial view of one project,
// projected by the viewer's capability set. Without the financial capability
// only the date span and the identity fields survive.
func RollupProject(project models.Project, caps models.Capabilities) (dto.ProjectRollup, error) {
	rollup := dto.ProjectRollup{
		UUID:        project.UUID,
		Name:        project.Name,
		Description: project.Description,
		Active:      project.Active,
		ClientUUID:  project.ClientUUID,
		ClientName:  project.Client.Name,
		StatusUUID:  project.StatusUUID,
		StatusName:  project.Status.Name,
		BudgetUUID:  project.BudgetUUID,
		Financial:   caps.Financial,
	}

	agg, err := aggregateProject(project)
	if err != nil {
		return dto.ProjectRollup{}, err
	}

	rollup.BeginDate = utils.FormatDateTimePtr(agg.beginDate)
	rollup.EndDate = utils.FormatDateTimePtr(agg.endDate)

	if !caps.Financial {
		return rollup, nil
	}

	brl := func(amount decimal.Decimal) *string {
		s := utils.FormatBRL(amount)
		return &s
	}

	rollup.PrevTotal = brl(agg.prevTotal)
	rollup.PrevCost = brl(agg.prevCost)
	rollup.PrevRevenue = brl(agg.prevRevenue)
	rollup.Total = brl(agg.total)
	rollup.Cost = brl(agg.cost)
	rollup.Revenue = brl(agg.revenue)
	rollup.CurrentExpense = brl(agg.currentExpense)
	rollup.CurrentIncome = brl(agg.currentIncome)
	rollup.CurrentRevenue = brl(agg.currentIncome.Sub(agg.currentExpense))

	return rollup, nil
}
