package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/denzstore/storepanel/internal/models"
)

type CatalogService interface {
	// ListServices returns the provider catalog grouped by category
	ListServices(ctx context.Context) (models.Catalog, error)
}

// CatalogHandler represents HTTP handler for catalog-related requests
type CatalogHandler struct {
	svc CatalogService
}

// NewCatalogHandler creates new CatalogHandler instance
func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type catalogResponse struct {
	Status   bool           `json:"status"`
	Services models.Catalog `json:"services"`
}

// ListServices returns the grouped service listing
// 200 — catalog fetched
// 400 — provider reported failure
// 500 — internal error
func (ch *CatalogHandler) ListServices() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		catalog, err := ch.svc.ListServices(r.Context())
		if err != nil {
			var upErr models.UpstreamError
			if errors.As(err, &upErr) {
				respondError(w, http.StatusBadRequest, upErr.Msg)
				return
			}
			respondError(w, http.StatusInternalServerError, "internal error")
			return
		}

		respondJSON(w, http.StatusOK, catalogResponse{
			Status:   true,
			Services: catalog,
		})
	}
}
