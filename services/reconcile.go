package services

import (
	"github.com/gestor-backend/models"
)

// TaskReconciliation is the three-way diff between a stored task set and an
// incoming one
type TaskReconciliation struct {
	ToCreate []models.Task
	ToUpdate []models.Task
	ToDelete []models.Task
}

// ReconcileTasks diffs the incoming task set against the stored one. Rows
// without identity are inserts, rows with identity are updates, and stored
// rows missing from the incoming set are deletes. The delete set is computed
// against the pre-update snapshot, so a task re-added under a fresh identity
// in the same request is never lost.
func ReconcileTasks(existing, incoming []models.Task) TaskReconciliation {
	var result TaskReconciliation

	kept := make(map[string]bool, len(incoming))
	for _, task := range incoming {
		if task.UUID == "" {
			result.ToCreate = append(result.ToCreate, task)
			continue
		}
		kept[task.UUID] = true
		result.ToUpdate = append(result.ToUpdate, task)
	}

	for _, task := range existing {
		if !kept[task.UUID] {
			result.ToDelete = append(result.ToDelete, task)
		}
	}

	return result
}
