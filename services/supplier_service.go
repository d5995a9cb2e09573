package services

import (
	"errors"

	"github.com/gestor-backend/dto"
	"github.com/gestor-backend/errs"
	"github.com/gestor-backend/models"
	"github.com/gestor-backend/repositories"
	"gorm.io/gorm"
)

// SupplierService handles business logic for suppliers
type SupplierService struct {
	supplierRepo *repositories.SupplierRepository
}

// NewSupplierService creates a new supplier service instance
func NewSupplierService() *SupplierService {
	return &SupplierService{supplierRepo: repositories.NewSupplierRepository()}
}

// ListSuppliers retrieves suppliers matching the filter
func (s *SupplierService) ListSuppliers(filter dto.ClientFilter) ([]models.Supplier, error) {
	repoFilter, err := partyFilter(filter)
	if err != nil {
		return nil, err
	}

	suppliers, err := s.supplierRepo.Find(repoFilter)
	if err != nil {
		return nil, errs.Server("failed to retrieve suppliers", err)
	}
	return suppliers, nil
}

// CreateSupplier registers a new supplier
func (s *SupplierService) CreateSupplier(req dto.CreateClientRequest) (models.Supplier, error) {
	kind, err := validatePartyDocuments(req.Type, req.CPF, req.CNPJ)
	if err != nil {
		return models.Supplier{}, err
	}

	if err := s.checkDocumentConflict(kind, req.CPF, req.CNPJ); err != nil {
		return models.Supplier{}, err
	}

	supplier := models.Supplier{
		Type:    kind,
		CPF:     req.CPF,
		CNPJ:    req.CNPJ,
		Name:    req.Name,
		Fantasy: req.Fantasy,
		Email:   req.Email,
		Phone:   req.Phone,
		Active:  req.Active,
	}

	supplier, err = s.supplierRepo.Create(supplier)
	if err != nil {
		return models.Supplier{}, errs.Server("failed to create supplier", err)
	}
	return supplier, nil
}

// UpdateSupplier modifies an existing supplier
func (s *SupplierService) UpdateSupplier(req dto.UpdateClientRequest) error {
	supplier, err := s.supplierRepo.FindByUUID(req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("supplier not found")
		}
		return errs.Server("failed to look up supplier", err)
	}

	kind, err := validatePartyDocuments(req.Type, req.CPF, req.CNPJ)
	if err != nil {
		return err
	}

	if req.CPF != supplier.CPF || req.CNPJ != supplier.CNPJ {
		if err := s.checkDocumentConflict(kind, req.CPF, req.CNPJ); err != nil {
			return err
		}
	}

	supplier.Type = kind
	supplier.CPF = req.CPF
	supplier.CNPJ = req.CNPJ
	supplier.Name = req.Name
	supplier.Fantasy = req.Fantasy
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Active = req.Active

	if err := s.supplierRepo.Update(supplier); err != nil {
		return errs.Server("failed to update supplier", err)
	}
	return nil
}

// DeleteSupplier removes a supplier unless expenses still reference it
func (s *SupplierService) DeleteSupplier(uuid string) error {
	if _, err := s.supplierRepo.FindByUUID(uuid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("supplier not found")
		}
		return errs.Server("failed to look up supplier", err)
	}

	expenses, err := s.supplierRepo.CountExpenses(uuid)
	if err != nil {
		return errs.Server("failed to count supplier expenses", err)
	}
	if expenses > 0 {
		return errs.Conflict("supplier is still referenced by expenses")
	}

	if err := s.supplierRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete supplier", err)
	}
	return nil
}

func (s *SupplierService) checkDocumentConflict(kind models.ClientType, cpf, cnpj string) error {
	if kind == models.ClientTypePerson {
		exists, err := s.supplierRepo.ExistsByCPF(cpf)
		if err != nil {
			return errs.Server("failed to check CPF", err)
		}
		if exists {
			return errs.Conflict("CPF already registered")
		}
		return nil
	}

	exists, err := s.supplierRepo.ExistsByCNPJ(cnpj)
	if err != nil {
		return errs.Server("failed to check CNPJ", err)
	}
	if exists {
		return errs.Conflict("CNPJ already registered")
	}
	return nil
}
