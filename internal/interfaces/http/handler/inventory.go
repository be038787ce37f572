package handler

import (
	appinventory "github.com/amunitsiia/shop/internal/application/inventory"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// InventoryHandler records incomes and reports warehouse stock
type InventoryHandler struct {
	BaseHandler
	inventory InventoryAdmin
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventory InventoryAdmin) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// RegisterIncome records a delivery and opens a stock lot
// @Summary      Register an income
// @Tags         admin-inventory
// @Accept       json
// @Produce      json
// @Param        request body appinventory.RegisterIncomeRequest true "Request body"
// @Success      201 {object} dto.Response{data=appinventory.IncomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incomes [post]
func (h *InventoryHandler) RegisterIncome(c *gin.Context) {
	var req appinventory.RegisterIncomeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	income, err := h.inventory.RegisterIncome(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, income)
}

// UpdateIncome godoc
// @Summary      Edit an income and reconcile its stock lot
// @Tags         admin-inventory
// @Accept       json
// @Produce      json
// @Param        id path string true "Income ID" format(uuid)
// @Param        request body appinventory.UpdateIncomeRequest true "Request body"
// @Success      200 {object} dto.Response{data=appinventory.IncomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incomes/{id} [put]
func (h *InventoryHandler) UpdateIncome(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appinventory.UpdateIncomeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	income, err := h.inventory.UpdateIncome(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, income)
}

// GetIncome godoc
// @Summary      Get an income by ID
// @Tags         admin-inventory
// @Produce      json
// @Param        id path string true "Income ID" format(uuid)
// @Success      200 {object} dto.Response{data=appinventory.IncomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incomes/{id} [get]
func (h *InventoryHandler) GetIncome(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	income, err := h.inventory.GetIncome(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, income)
}

// ListIncomes godoc
// @Summary      List incomes
// @Tags         admin-inventory
// @Produce      json
// @Param        filter query appinventory.IncomeListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]appinventory.IncomeResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/incomes [get]
func (h *InventoryHandler) ListIncomes(c *gin.Context) {
	var filter appinventory.IncomeListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.inventory.ListIncomes(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// ListStock godoc
// @Summary      List stock lots
// @Tags         admin-inventory
// @Produce      json
// @Param        filter query appinventory.StockListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]appinventory.StockResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/stock [get]
func (h *InventoryHandler) ListStock(c *gin.Context) {
	var filter appinventory.StockListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.inventory.ListStock(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// StockSummary godoc
// @Summary      Stock on hand per product
// @Tags         admin-inventory
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appinventory.ProductStockResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/stock/summary [get]
func (h *InventoryHandler) StockSummary(c *gin.Context) {
	list, err := h.inventory.StockSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// Consume writes off stock oldest lot first
// @Summary      Write off stock oldest lot first
// @Tags         admin-inventory
// @Accept       json
// @Produce      json
// @Param        request body appinventory.ConsumeRequest true "Request body"
// @Success      200 {object} dto.Response{data=dto.MessageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/stock/consume [post]
func (h *InventoryHandler) Consume(c *gin.Context) {
	var req appinventory.ConsumeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.inventory.Consume(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MessageResponse{Message: "Stock consumed"})
}
