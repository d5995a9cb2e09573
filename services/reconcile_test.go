package services

import (
	"testing"

	"github.com/gestor-backend/models"
	"github.com/stretchr/testify/assert"
)

func taskWithUUID(uuid string) models.Task {
	return models.Task{UUID: uuid, Type: models.TaskTypeActivity, Description: "t-" + uuid}
}

func TestReconcileTasks(t *testing.T) {
	tests := []struct {
		name         string
		existing     []models.Task
		incoming     []models.Task
		wantCreate   int
		wantUpdate   []string
		wantDelete   []string
	}{
		{
			name:       "empty existing, all incoming created",
			existing:   nil,
			incoming:   []models.Task{taskWithUUID(""), taskWithUUID("")},
			wantCreate: 2,
		},
		{
			name:       "empty incoming deletes everything",
			existing:   []models.Task{taskWithUUID("a"), taskWithUUID("b")},
			incoming:   nil,
			wantDelete: []string{"a", "b"},
		},
		{
			name:       "full overlap updates everything",
			existing:   []models.Task{taskWithUUID("a"), taskWithUUID("b")},
			incoming:   []models.Task{taskWithUUID("a"), taskWithUUID("b")},
			wantUpdate: []string{"a", "b"},
		},
		{
			name:       "mixed create update delete",
			existing:   []models.Task{taskWithUUID("a"), taskWithUUID("b"), taskWithUUID("c")},
			incoming:   []models.Task{taskWithUUID("a"), taskWithUUID("")},
			wantCreate: 1,
			wantUpdate: []string{"a"},
			wantDelete: []string{"b", "c"},
		},
		{
			name:       "re-added row under fresh identity does not protect the old one",
			existing:   []models.Task{taskWithUUID("a")},
			incoming:   []models.Task{taskWithUUID("")},
			wantCreate: 1,
			wantDelete: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ReconcileTasks(tt.existing, tt.incoming)

			assert.Len(t, result.ToCreate, tt.wantCreate)

			var updated []string
			for _, task := range result.ToUpdate {
				updated = append(updated, task.UUID)
			}
			assert.ElementsMatch(t, tt.wantUpdate, updated)

			var deleted []string
			for _, task := range result.ToDelete {
				deleted = append(deleted, task.UUID)
			}
			assert.ElementsMatch(t, tt.wantDelete, deleted)
		})
	}
}

func TestReconcileTasks_Idempotent(t *testing.T) {
	existing := []models.Task{taskWithUUID("a"), taskWithUUID("b"), taskWithUUID("c")}

	result := ReconcileTasks(existing, existing)

	assert.Empty(t, result.ToCreate)
	assert.Empty(t, result.ToDelete)
	assert.Len(t, result.ToUpdate, len(existing))
}
