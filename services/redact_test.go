package services

import (
	"testing"
	"time"

	"github.com/gestor-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func sampleUser() models.User {
	return models.User{
		UUID:       "u-1",
		CPF:        "529.982.247-25",
		Name:       "Maria Souza",
		Username:   "maria",
		Email:      "maria@example.com",
		Phone:      "11 99999-0000",
		Active:     true,
		HourlyRate: decPtr("120.00"),
		AuthUUID:   "a-1",
		Auth:       models.Auth{Type: "Manager"},
	}
}

func TestBuildUserView_FullCapabilities(t *testing.T) {
	view := BuildUserView(sampleUser(), allCaps(), "someone-else")

	require.NotNil(t, view.CPF)
	assert.Equal(t, "529.982.247-25", *view.CPF)
	require.NotNil(t, view.Name)
	assert.Equal(t, "Maria Souza", *view.Name)
	require.NotNil(t, view.HourlyRate)
	assert.Equal(t, "R$ 120,00", *view.HourlyRate)
	assert.Equal(t, "Manager", view.Type)
}

func TestBuildUserView_RedactsPersonalFields(t *testing.T) {
	view := BuildUserView(sampleUser(), models.Capabilities{Financial: true}, "someone-else")

	assert.Nil(t, view.CPF)
	assert.Nil(t, view.Name)
	assert.Nil(t, view.Phone)
	assert.NotNil(t, view.HourlyRate)
	assert.Equal(t, "maria", view.Username)
}

func TestBuildUserView_RedactsFinancialFields(t *testing.T) {
	view := BuildUserView(sampleUser(), models.Capabilities{Personal: true}, "someone-else")

	assert.Nil(t, view.HourlyRate)
	assert.NotNil(t, view.CPF)
}

func TestBuildUserView_SelfOverride(t *testing.T) {
	// a viewer with no personal/financial capability still sees their own record
	view := BuildUserView(sampleUser(), models.Capabilities{}, "u-1")

	require.NotNil(t, view.CPF)
	assert.Equal(t, "529.982.247-25", *view.CPF)
	require.NotNil(t, view.Name)
	require.NotNil(t, view.HourlyRate)
	assert.Equal(t, "R$ 120,00", *view.HourlyRate)
}

func TestBuildUserView_OtherUserStaysRedacted(t *testing.T) {
	view := BuildUserView(sampleUser(), models.Capabilities{}, "u-2")

	assert.Nil(t, view.CPF)
	assert.Nil(t, view.Name)
	assert.Nil(t, view.Phone)
	assert.Nil(t, view.HourlyRate)
}

func TestBuildTaskView_FormatsBoundaryFields(t *testing.T) {
	task := models.Task{
		UUID:        "t-1",
		Type:        models.TaskTypeActivity,
		Description: "Design review",
		BeginDate:   mustDate(t, "2024-01-10T08:00:00Z"),
		EndDate:     mustDate(t, "2024-01-10T12:00:00Z"),
		HourlyRate:  decPtr("100.00"),
		Revenue:     dec("1234.56"),
		StatusUUID:  "s-1",
		ProjectUUID: "p-1",
	}

	view := BuildTaskView(task)

	assert.Equal(t, "10/01/24 08:00", view.BeginDate)
	assert.Equal(t, "10/01/24 12:00", view.EndDate)
	assert.Equal(t, "R$ 100,00", view.HourlyRate)
	assert.Equal(t, "R$ 0,00", view.Cost)
	assert.Equal(t, "R$ 1.234,56", view.Revenue)
}
