package handler

import (
	apppartner "github.com/amunitsiia/shop/internal/application/partner"
	"github.com/gin-gonic/gin"
)

// PartnerHandler manages suppliers and buyers
type PartnerHandler struct {
	BaseHandler
	suppliers SupplierAdmin
	buyers    BuyerAdmin
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(suppliers SupplierAdmin, buyers BuyerAdmin) *PartnerHandler {
	return &PartnerHandler{suppliers: suppliers, buyers: buyers}
}

// CreateSupplier godoc
// @Summary      Create a supplier
// @Tags         admin-partners
// @Accept       json
// @Produce      json
// @Param        request body apppartner.SupplierRequest true "Request body"
// @Success      201 {object} dto.Response{data=apppartner.SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/suppliers [post]
func (h *PartnerHandler) CreateSupplier(c *gin.Context) {
	var req apppartner.SupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}
	s, err := h.suppliers.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, s)
}

// GetSupplier godoc
// @Summary      Get a supplier by ID
// @Tags         admin-partners
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      200 {object} dto.Response{data=apppartner.SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/suppliers/{id} [get]
func (h *PartnerHandler) GetSupplier(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.suppliers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, s)
}

// ListSuppliers godoc
// @Summary      List suppliers
// @Tags         admin-partners
// @Produce      json
// @Param        filter query apppartner.SupplierListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]apppartner.SupplierResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/suppliers [get]
func (h *PartnerHandler) ListSuppliers(c *gin.Context) {
	var filter apppartner.SupplierListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.suppliers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// UpdateSupplier godoc
// @Summary      Update a supplier
// @Tags         admin-partners
// @Accept       json
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Param        request body apppartner.SupplierRequest true "Request body"
// @Success      200 {object} dto.Response{data=apppartner.SupplierResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/suppliers/{id} [put]
func (h *PartnerHandler) UpdateSupplier(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req apppartner.SupplierRequest
	if !h.bindJSON(c, &req) {
		return
	}
	s, err := h.suppliers.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, s)
}

// DeleteSupplier godoc
// @Summary      Delete a supplier
// @Tags         admin-partners
// @Produce      json
// @Param        id path string true "Supplier ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/suppliers/{id} [delete]
func (h *PartnerHandler) DeleteSupplier(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.suppliers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetBuyer godoc
// @Summary      Get a buyer by ID
// @Tags         admin-partners
// @Produce      json
// @Param        id path string true "Buyer ID" format(uuid)
// @Success      200 {object} dto.Response{data=apppartner.BuyerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/buyers/{id} [get]
func (h *PartnerHandler) GetBuyer(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.buyers.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// ListBuyers godoc
// @Summary      List buyers
// @Tags         admin-partners
// @Produce      json
// @Param        filter query apppartner.BuyerListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]apppartner.BuyerResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/buyers [get]
func (h *PartnerHandler) ListBuyers(c *gin.Context) {
	var filter apppartner.BuyerListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.buyers.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// UpdateBuyer godoc
// @Summary      Update a buyer
// @Tags         admin-partners
// @Accept       json
// @Produce      json
// @Param        id path string true "Buyer ID" format(uuid)
// @Param        request body apppartner.BuyerRequest true "Request body"
// @Success      200 {object} dto.Response{data=apppartner.BuyerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/buyers/{id} [put]
func (h *PartnerHandler) UpdateBuyer(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req apppartner.BuyerRequest
	if !h.bindJSON(c, &req) {
		return
	}
	b, err := h.buyers.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// DeleteBuyer godoc
// @Summary      Delete a buyer
// @Tags         admin-partners
// @Produce      json
// @Param        id path string true "Buyer ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/buyers/{id} [delete]
func (h *PartnerHandler) DeleteBuyer(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.buyers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
