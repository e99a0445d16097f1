package catalog

import (
	catalogRepo "fobworks/database/repository/catalog"
	"fobworks/models"

	"github.com/google/uuid"
)

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (s *DefaultCatalogService) ListPublic() ([]models.ServiceOffering, error) {
	return s.Repo.List(true)
}

func (s *DefaultCatalogService) ListAll() ([]models.ServiceOffering, error) {
	return s.Repo.List(false)
}

func (s *DefaultCatalogService) Get(id string) (*models.ServiceOffering, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCatalogService) Create(in models.ServiceInput) (*models.ServiceOffering, error) {
	svc := &models.ServiceOffering{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		FobTypes:    in.FobTypes,
		Active:      true,
	}
	if in.Active != nil {
		svc.Active = *in.Active
	}
	if err := s.Repo.Create(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Update(id string, in models.ServiceInput) (*models.ServiceOffering, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.PriceCents = in.PriceCents
	svc.FobTypes = in.FobTypes
	if in.Active != nil {
		svc.Active = *in.Active
	}
	if err := s.Repo.Update(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *DefaultCatalogService) Delete(id string) error {
	return s.Repo.Delete(id)
}
