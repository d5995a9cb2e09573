package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"gorm.io/gorm"
)

// StatusService handles business logic for workflow statuses
type StatusService struct {
	statusRepo *repositories.StatusRepository
}

// NewStatusService creates a new status service instance
func NewStatusService() *StatusService {
	return &StatusService{statusRepo: repositories.NewStatusRepository()}
}

// ListStatuses retrieves statuses, optionally by UUID or name fragment
func (s *StatusService) ListStatuses(uuid, name string) ([]models.Status, error) {
	statuses, err := s.statusRepo.Find(uuid, name)
	if err != nil {
		return nil, errs.Server("failed to retrieve statuses", err)
	}
	return statuses, nil
}

// CreateStatus registers a new status with a unique name
func (s *StatusService) CreateStatus(req dto.CreateStatusRequest) (models.Status, error) {
	exists, err := s.statusRepo.ExistsByName(req.Name)
	if err != nil {
		return models.Status{}, errs.Server("failed to check status name", err)
	}
	if exists {
		return models.Status{}, errs.Conflict("status name already registered")
	}

	status := models.Status{Name: req.Name, Description: req.Description}
	status, err = s.statusRepo.Create(status)
	if err != nil {
		return models.Status{}, errs.Server("failed to create status", err)
	}
	return status, nil
}

// UpdateStatus modifies an existing status
func (s *StatusService) UpdateStatus(req dto.UpdateStatusRequest) error {
	status, err := s.findStatus(req.UUID)
	if err != nil {
		return err
	}

	if req.Name != status.Name {
		exists, err := s.statusRepo.ExistsByName(req.Name)
		if err != nil {
			return errs.Server("failed to check status name", err)
		}
		if exists {
			return errs.Conflict("status name already registered")
		}
	}

	status.Name = req.Name
	status.Description = req.Description

	if err := s.statusRepo.Update(status); err != nil {
		return errs.Server("failed to update status", err)
	}
	return nil
}

// DeleteStatus removes a status unless projects or tasks still reference it
func (s *StatusService) DeleteStatus(uuid string) error {
	if _, err := s.findStatus(uuid); err != nil {
		return err
	}

	references, err := s.statusRepo.CountReferences(uuid)
	if err != nil {
		return errs.Server("failed to count status references", err)
	}
	if references > 0 {
		return errs.Conflict("status is still referenced by projects or tasks")
	}

	if err := s.statusRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete status", err)
	}
	return nil
}

func (s *StatusService) findStatus(uuid string) (models.Status, error) {
	status, err := s.statusRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Status{}, errs.NotFound("status not found")
		}
		return models.Status{}, errs.Server("failed to look up status", err)
	}
	return status, nil
}
