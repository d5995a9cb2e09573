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

// TransactionService handles business logic for ledger entries. Every
// operation requires the financial capability.
type TransactionService struct {
	transactionRepo *repositories.TransactionRepository
	clientRepo      *repositories.ClientRepository
	projectRepo     *repositories.ProjectRepository
	userRepo        *repositories.UserRepository
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService() *TransactionService {
	return &TransactionService{
		transactionRepo: repositories.NewTransactionRepository(),
		clientRepo:      repositories.NewClientRepository(),
		projectRepo:     repositories.NewProjectRepository(),
		userRepo:        repositories.NewUserRepository(),
	}
}

// ListTransactions retrieves ledger entries matching the filter
func (s *TransactionService) ListTransactions(filter dto.TransactionFilter, caps models.Capabilities) ([]dto.TransactionView, error) {
	if !caps.Financial {
		return nil, errs.Authorization("user lacks permission over financial data")
	}

	repoFilter := repositories.TransactionFilter{
		Description: filter.Description,
		ClientUUID:  filter.ClientUUID,
		ProjectUUID: filter.ProjectUUID,
		UserUUID:    filter.UserUUID,
	}

	for _, tag := range filter.Types {
		kind, err := models.ParseTransactionType(tag)
		if err != nil {
			return nil, err
		}
		repoFilter.Types = append(repoFilter.Types, kind)
	}
	if filter.AmountMin != nil {
		min, err := utils.ParseBRL(*filter.AmountMin)
		if err != nil {
			return nil, err
		}
		repoFilter.AmountMin = &min
	}
	if filter.AmountMax != nil {
		max, err := utils.ParseBRL(*filter.AmountMax)
		if err != nil {
			return nil, err
		}
		repoFilter.AmountMax = &max
	}
	if filter.DateMin != nil {
		min, err := utils.ParseDateTime(*filter.DateMin)
		if err != nil {
			return nil, err
		}
		repoFilter.DateMin = &min
	}
	if filter.DateMax != nil {
		max, err := utils.ParseDateTime(*filter.DateMax)
		if err != nil {
			return nil, err
		}
		repoFilter.DateMax = &max
	}

	transactions, err := s.transactionRepo.Find(repoFilter)
	if err != nil {
		return nil, errs.Server("failed to retrieve transactions", err)
	}

	views := make([]dto.TransactionView, 0, len(transactions))
	for _, transaction := range transactions {
		views = append(views, buildTransactionView(transaction))
	}
	return views, nil
}

// CreateTransaction records a new ledger entry
func (s *TransactionService) CreateTransaction(req dto.CreateTransactionRequest, caps models.Capabilities) (models.Transaction, error) {
	if !caps.Financial {
		return models.Transaction{}, errs.Authorization("user lacks permission over financial data")
	}

	transaction, err := s.transactionFromRequest("", req.Type, req.Amount, req.Date, req.Description, req.ClientUUID, req.ProjectUUID, req.UserUUID)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, err = s.transactionRepo.Create(transaction)
	if err != nil {
		return models.Transaction{}, errs.Server("failed to create transaction", err)
	}
	return transaction, nil
}

// UpdateTransaction modifies a ledger entry
func (s *TransactionService) UpdateTransaction(req dto.UpdateTransactionRequest, caps models.Capabilities) error {
	if !caps.Financial {
		return errs.Authorization("user lacks permission over financial data")
	}

	existing, err := s.findTransaction(req.UUID)
	if err != nil {
		return err
	}

	transaction, err := s.transactionFromRequest(req.UUID, req.Type, req.Amount, req.Date, req.Description, req.ClientUUID, req.ProjectUUID, req.UserUUID)
	if err != nil {
		return err
	}
	transaction.CreatedAt = existing.CreatedAt

	if err := s.transactionRepo.Update(transaction); err != nil {
		return errs.Server("failed to update transaction", err)
	}
	return nil
}

// DeleteTransaction removes a ledger entry
func (s *TransactionService) DeleteTransaction(uuid string, caps models.Capabilities) error {
	if !caps.Financial {
		return errs.Authorization("user lacks permission over financial data")
	}

	if _, err := s.findTransaction(uuid); err != nil {
		return err
	}
	if err := s.transactionRepo.Delete(uuid); err != nil {
		return errs.Server("failed to delete transaction", err)
	}
	return nil
}

func (s *TransactionService) findTransaction(uuid string) (models.Transaction, error) {
	transaction, err := s.transactionRepo.FindByUUID(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.NotFound("transaction not found")
		}
		return models.Transaction{}, errs.Server("failed to look up transaction", err)
	}
	return transaction, nil
}

// transactionFromRequest validates the kind tag, amount, date and references
func (s *TransactionService) transactionFromRequest(uuid, typeTag, amount, date, description, clientUUID string, projectUUID *string, userUUID string) (models.Transaction, error) {
	kind, err := models.ParseTransactionType(typeTag)
	if err != nil {
		return models.Transaction{}, err
	}

	value, err := utils.ParseBRL(amount)
	if err != nil {
		return models.Transaction{}, err
	}

	when, err := utils.ParseDateTime(date)
	if err != nil {
		return models.Transaction{}, err
	}

	if _, err := s.clientRepo.FindByUUID(clientUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.NotFound("client not found")
		}
		return models.Transaction{}, errs.Server("failed to look up client", err)
	}
	if projectUUID != nil {
		if _, err := s.projectRepo.FindByUUID(*projectUUID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Transaction{}, errs.NotFound("project not found")
			}
			return models.Transaction{}, errs.Server("failed to look up project", err)
		}
	}
	if _, err := s.userRepo.FindByUUID(userUUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, errs.NotFound("user not found")
		}
		return models.Transaction{}, errs.Server("failed to look up user", err)
	}

	return models.Transaction{
		UUID:        uuid,
		Type:        kind,
		Amount:      value,
		Date:        when,
		Description: description,
		ClientUUID:  clientUUID,
		ProjectUUID: projectUUID,
		UserUUID:    userUUID,
	}, nil
}

func buildTransactionView(transaction models.Transaction) dto.TransactionView {
	view := dto.TransactionView{
		UUID:        transaction.UUID,
		Type:        string(transaction.Type),
		Amount:      utils.FormatBRL(transaction.Amount),
		Date:        utils.FormatDateTime(transaction.Date),
		Description: transaction.Description,
		ClientUUID:  transaction.ClientUUID,
		ClientName:  transaction.Client.Name,
		ProjectUUID: transaction.ProjectUUID,
		UserUUID:    transaction.UserUUID,
		Username:    transaction.User.Username,
	}
	if transaction.Project != nil {
		view.ProjectName = &transaction.Project.Name
	}
	return view
}
