package v1

import (
	"net/http"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type AdminCatalogHandler struct {
	catalogUC *usecase.CatalogUsecase
}

func NewAdminCatalogHandler(uc *usecase.CatalogUsecase) *AdminCatalogHandler {
	return &AdminCatalogHandler{catalogUC: uc}
}

// ListItems returns the whole catalog including unavailable items.
func (h *AdminCatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	filter := domain.MenuFilter{
		Category:      r.URL.Query().Get("category"),
		AvailableOnly: false,
	}

	items, err := h.catalogUC.GetMenu(r.Context(), filter)
	if err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

type itemReq struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Available   bool    `json:"available"`
}

func (h *AdminCatalogHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req itemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	item := &domain.MenuItem{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if err := h.catalogUC.CreateItem(r.Context(), item); err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *AdminCatalogHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Item ID required")
		return
	}

	var req itemReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	item := &domain.MenuItem{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Available:   req.Available,
	}
	if err := h.catalogUC.UpdateItem(r.Context(), item); err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *AdminCatalogHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		utils.WriteError(w, http.StatusBadRequest, "Item ID required")
		return
	}

	if err := h.catalogUC.DeleteItem(r.Context(), id); err != nil {
		respondError(w, err, http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}
