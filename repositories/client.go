package repositories

import (
	"github.com/gestor-backend/models"
)

// ClientRepository handles database operations for clients
type ClientRepository struct{}

// NewClientRepository creates a new client repository instance
func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

// PartyFilter narrows client/supplier listing
type PartyFilter struct {
	UUID    string
	Types   []models.ClientType
	CPF     string
	CNPJ    string
	Name    string
	Fantasy string
	Email   string
	Phone   string
	Active  *bool
}

// Find retrieves clients matching the filter
func (r *ClientRepository) Find(filter PartyFilter) ([]models.Client, error) {
	query := db().Model(&models.Client{})

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}
	if filter.CPF != "" {
		query = query.Where("cpf LIKE ?", "%"+filter.CPF+"%")
	}
	if filter.CNPJ != "" {
		query = query.Where("cnpj LIKE ?", "%"+filter.CNPJ+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Fantasy != "" {
		query = query.Where("fantasy ILIKE ?", "%"+filter.Fantasy+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}

	var clients []models.Client
	result := query.Order("name asc").Find(&clients)
	return clients, result.Error
}

// FindByUUID retrieves a client by its UUID
func (r *ClientRepository) FindByUUID(uuid string) (models.Client, error) {
	var client models.Client
	result := db().First(&client, "uuid = ?", uuid)
	return client, result.Error
}

// ExistsByCPF checks if the CPF is already registered
func (r *ClientRepository) ExistsByCPF(cpf string) (bool, error) {
	var count int64
	err := db().Model(&models.Client{}).Where("cpf = ?", cpf).Count(&count).Error
	return count > 0, err
}

// ExistsByCNPJ checks if the CNPJ is already registered
func (r *ClientRepository) ExistsByCNPJ(cnpj string) (bool, error) {
	var count int64
	err := db().Model(&models.Client{}).Where("cnpj = ?", cnpj).Count(&count).Error
	return count > 0, err
}

// Create inserts a new client into the database
func (r *ClientRepository) Create(client models.Client) (models.Client, error) {
	result := db().Create(&client)
	return client, result.Error
}

// Update modifies an existing client
func (r *ClientRepository) Update(client models.Client) error {
	result := db().Save(&client)
	return result.Error
}

// Delete removes a client from the database
func (r *ClientRepository) Delete(uuid string) error {
	result := db().Delete(&models.Client{}, "uuid = ?", uuid)
	return result.Error
}

// CountProjects counts projects referencing the client
func (r *ClientRepository) CountProjects(uuid string) (int64, error) {
	var count int64
	err := db().Model(&models.Project{}).Where("client_uuid = ?", uuid).Count(&count).Error
	return count, err
}
