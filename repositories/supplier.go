package repositories

import (
	"github.com/gestor-backend/models"
)

// SupplierRepository handles database operations for suppliers
type SupplierRepository struct{}

// NewSupplierRepository creates a new supplier repository instance
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

// Find retrieves suppliers matching the filter
func (r *SupplierRepository) Find(filter PartyFilter) ([]models.Supplier, error) {
	query := db().Model(&models.Supplier{})

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

	var suppliers []models.Supplier
	result := query.Order("name asc").Find(&suppliers)
	return suppliers, result.Error
}

// FindByUUID retrieves a supplier by its UUID
func (r *SupplierRepository) FindByUUID(uuid string) (models.Supplier, error) {
	var supplier models.Supplier
	result := db().First(&supplier, "uuid = ?", uuid)
	return supplier, result.Error
}

// ExistsByCPF checks if the CPF is already registered
func (r *SupplierRepository) ExistsByCPF(cpf string) (bool, error) {
	var count int64
	err := db().Model(&models.Supplier{}).Where("cpf = ?", cpf).Count(&count).Error
	return count > 0, err
}

// ExistsByCNPJ checks if the CNPJ is already registered
func (r *SupplierRepository) ExistsByCNPJ(cnpj string) (bool, error) {
	var count int64
	err := db().Model(&models.Supplier{}).Where("cnpj = ?", cnpj).Count(&count).Error
	return count > 0, err
}

// Create inserts a new supplier into the database
func (r *SupplierRepository) Create(supplier models.Supplier) (models.Supplier, error) {
	result := db().Create(&supplier)
	return supplier, result.Error
}

// Update modifies an existing supplier
func (r *SupplierRepository) Update(supplier models.Supplier) error {
	result := db().Save(&supplier)
	return result.Error
}

// Delete removes a supplier from the database
func (r *SupplierRepository) Delete(uuid string) error {
	result := db().Delete(&models.Supplier{}, "uuid = ?", uuid)
	return result.Error
}

// CountExpenses counts expenses referencing the supplier
func (r *SupplierRepository) CountExpenses(uuid string) (int64, error) {
	var count int64
	err := db().Model(&models.Expense{}).Where("supplier_uuid = ?", uuid).Count(&count).Error
	return count, err
}
