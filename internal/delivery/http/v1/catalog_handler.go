package v1

import (
	"net/http"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"
)

type CatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: uc}
}

// GetMenu lists available items, optionally filtered by category.
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	filter := domain.MenuFilter{
		Category:      r.URL.Query().Get("category"),
		AvailableOnly: true,
	}

	items, err := h.catalogUC.GetMenu(r.Context(), filter)
	if err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Item ID required")
		return
	}

	item, err := h.catalogUC.GetItem(r.Context(), id)
	if err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.catalogUC.Categories())
}
