package catalogRepo

import "fobworks/models"

// CatalogRepository defines data access for the service catalog.
type CatalogRepository interface {
	Create(svc *models.ServiceOffering) error
	GetByID(id string) (*models.ServiceOffering, error)
	// List returns catalog entries; activeOnly hides disabled services from
	// the public site while the admin dashboard sees everything.
	List(activeOnly bool) ([]models.ServiceOffering, error)
	Update(svc *models.ServiceOffering) error
	Delete(id string) error
}
