package handlers

import (
	"log/slog"
	"net/http"

	"github.com/inventoryapp/inventory-api/internal/api/middleware"
	apperrors "github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/models"
	service "github.com/inventoryapp/inventory-api/internal/services"
	"github.com/inventoryapp/inventory-api/internal/utils"
	"github.com/inventoryapp/inventory-api/internal/utils/response"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) GetProductStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, appErr := parseProductID(r)
		if appErr != nil {
			response.Error(w, appErr)

			return
		}

		inv, err := h.inventoryService.GetProductStock(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, inv)
	}
}

func (h *InventoryHandler) AddStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, appErr := parseProductID(r)
		if appErr != nil {
			response.Error(w, appErr)

			return
		}

		var req models.UpdateStockRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.BadRequestError("Stock data is required").WithError(err))

			return
		}

		inv, err := h.inventoryService.AddStock(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error adding stock",
				slog.Int64("product_id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Stock added",
			slog.Int64("product_id", id),
			slog.Int64("quantity", req.Quantity),
			slog.Int64("current_stock", inv.CurrentStock))
		response.WriteJson(w, http.StatusOK, inv)
	}
}

func (h *InventoryHandler) RemoveStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, appErr := parseProductID(r)
		if appErr != nil {
			response.Error(w, appErr)

			return
		}

		var req models.UpdateStockRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, apperrors.BadRequestError("Stock data is required").WithError(err))

			return
		}

		inv, err := h.inventoryService.RemoveStock(r.Context(), id, &req)
		if err != nil {
			logger.Error("Error removing stock",
				slog.Int64("product_id", id),
				slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Stock removed",
			slog.Int64("product_id", id),
			slog.Int64("quantity", req.Quantity),
			slog.Int64("current_stock", inv.CurrentStock))
		response.WriteJson(w, http.StatusOK, inv)
	}
}

func (h *InventoryHandler) GetStockHistory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, appErr := parseProductID(r)
		if appErr != nil {
			response.Error(w, appErr)

			return
		}

		history, err := h.inventoryService.GetStockHistory(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.WriteJson(w, http.StatusOK, history)
	}
}
