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

// ClientService handles business logic for billing clients
type ClientService struct {
	clientRepo *repositories.ClientRepository
}

// NewClientService creates a new client service instance
func NewClientService() *ClientService {
	return &ClientService{clientRepo: repositories.NewClientRepository()}
}

// ListClients retrieves clients matching the filter
func (s *ClientService) ListClients(filter dto.ClientFilter) ([]models.Client, error) {
	repoFilter, err := partyFilter(filter)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.Find(repoFilter)
	if err != nil {
		return nil, errs.Server("failed to retrieve clients", err)
	}
	return clients, nil
}

// CreateClient registers a new client
func (s *ClientService) CreateClient(req dto.CreateClientRequest) (models.Client, error) {
	kind, err := validatePartyDocuments(req.Type, req.CPF, req.CNPJ)
	if err != nil {
		return models.Client{}, err
	}

	if err := s.checkDocumentConflict(kind, req.CPF, req.CNPJ); err != nil {
		return models.Client{}, err
	}

	client := models.Client{
		Type:    kind,
		CPF:     req.CPF,
		CNPJ:    req.CNPJ,
		Name:    req.Name,
		Fantasy: req.Fantasy,
		Email:   req.Email,
		Phone:   req.Phone,
		Active:  req.Active,
	}

	client, err = s.clientRepo.Create(client)
	if err != nil {
		return models.Client{}, errs.Server("failed to create client", err)
	}
	return client, nil
}

// UpdateClient modifies an existing client
func (s *ClientService) UpdateClient(req dto.UpdateClientRequest) error {
	client, err := s.clientRepo.FindByUUID(req.UUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("client not found")
		}
		return errs.Server("failed to look up client", err)
	}

	kind, err := validatePartyDocuments(req.Type, req.CPF, req.CNPJ)
	if err != nil {
		return err
	}

	if req.CPF != client.CPF || req.CNPJ != client.CNPJ {
		if err := s.checkDocumentConflict(kind, req.CPF, req.CNPJ); err != nil {
			return err
		}
	}

	client.Type = kind
	client.CPF = req.CPF
	client.CNPJ = req.CNPJ
	client.Name = req.Name
	client.Fantasy = req.Fantasy
	client.Email = req.Email
	client.Phone = req.Phone
	client.Active = req.Active

	if err := s.clientRepo.Update(client); err != nil {
		return errs.Server("failed to update client", err)
	}
	return nil
}

// DeleteClient removes a client unless projects still reference it
func (s *ClientService) DeleteClient(uuid string) error {
	if _, err := s.clientRepo.FindByUUID(uuid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("client not found")
		}
		return errs.Server("failed to look up client", err)
	}

	projects, err := s.clientRepo.CountProjects(uuid)
	if err != nil {
		return errs.Server("failed to count client projects", err)
	}
	if projects > 0 {
		return errs.Conflict("client is still referenced by projects")
	}

	if err := s.clientRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete client", err)
	}
	return nil
}

func (s *ClientService) checkDocumentConflict(kind models.ClientType, cpf, cnpj string) error {
	if kind == models.ClientTypePerson {
		exists, err := s.clientRepo.ExistsByCPF(cpf)
		if err != nil {
			return errs.Server("failed to check CPF", err)
		}
		if exists {
			return errs.Conflict("CPF already registered")
		}
		return nil
	}

	exists, err := s.clientRepo.ExistsByCNPJ(cnpj)
	if err != nil {
		return errs.Server("failed to check CNPJ", err)
	}
	if exists {
		return errs.Conflict("CNPJ already registered")
	}
	return nil
}

// validatePartyDocuments enforces the legal-form rules shared by clients and
// suppliers: persons carry a valid CPF, enterprises a valid CNPJ
func validatePartyDocuments(typeTag, cpf, cnpj string) (models.ClientType, error) {
	kind, err := models.ParseClientType(typeTag)
	if err != nil {
		return "", err
	}

	switch kind {
	case models.ClientTypePerson:
		if cpf == "" {
			return "", errs.Validation("CPF is required for person records")
		}
		if !utils.ValidateCPF(cpf) {
			return "", errs.Validation("invalid CPF")
		}
		if cnpj != "" {
			return "", errs.Validation("person records cannot carry a CNPJ")
		}
	case models.ClientTypeEnterprise:
		if cnpj == "" {
			return "", errs.Validation("CNPJ is required for enterprise records")
		}
		if !utils.ValidateCNPJ(cnpj) {
			return "", errs.Validation("invalid CNPJ")
		}
		if cpf != "" {
			return "", errs.Validation("enterprise records cannot carry a CPF")
		}
	}
	return kind, nil
}

// partyFilter converts a boundary filter into a repository filter
func partyFilter(filter dto.ClientFilter) (repositories.PartyFilter, error) {
	repoFilter := repositories.PartyFilter{
		CPF:     filter.CPF,
		CNPJ:    filter.CNPJ,
		Name:    filter.Name,
		Fantasy: filter.Fantasy,
		Email:   filter.Email,
		Phone:   filter.Phone,
		Active:  filter.Active,
	}
	for _, tag := range filter.Types {
		kind, err := models.ParseClientType(tag)
		if err != nil {
			return repositories.PartyFilter{}, err
		}
		repoFilter.Types = append(repoFilter.Types, kind)
	}
	return repoFilter, nil
}
