package catalog

import "fobworks/models"

// Service manages the editable catalog of fob duplication offerings.
type Service interface {
	ListPublic() ([]models.ServiceOffering, error)
	ListAll() ([]models.ServiceOffering, error)
	Get(id string) (*models.ServiceOffering, error)
	Create(in models.ServiceInput) (*models.ServiceOffering, error)
	Update(id string, in models.ServiceInput) (*models.ServiceOffering, error)
	Delete(id string) error
}
