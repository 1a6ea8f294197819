package service

import (
	"context"

	"github.com/denzstore/storepanel/internal/models"
	"github.com/denzstore/storepanel/internal/remoteconfig"
	"github.com/denzstore/storepanel/internal/upstream"
)

// CatalogService serves the provider service catalog grouped by category
type CatalogService struct {
	client *upstream.Client
	creds  *remoteconfig.Provider
}

// NewCatalogService creates new CatalogService instance
func NewCatalogService(client *upstream.Client, creds *remoteconfig.Provider) *CatalogService {
	return &CatalogService{
		client: client,
		creds:  creds,
	}
}

// ListServices fetches the catalog with current credentials and groups
// it by category
func (cs *CatalogService) ListServices(ctx context.Context) (models.Catalog, error) {
	services, err := cs.client.Services(ctx, cs.creds.Current())
	if err != nil {
		return nil, err
	}

	return groupByCategory(services), nil
}

// groupByCategory buckets services by their category field, entries
// without a category land in the "Other" bucket
func groupByCategory(services []upstream.ServiceInfo) models.Catalog {
	catalog := models.Catalog{}
	for _, s := range services {
		category := s.Category
		if category == "" {
			category = models.CategoryOther
		}
		catalog[category] = append(catalog[category], s.Entry)
	}
	return catalog
}
