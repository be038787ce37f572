package handler

import (
	appreview "github.com/amunitsiia/shop/internal/application/review"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// OrderHandler gives the back office read access to orders and sales
// and moderation of reviews
type OrderHandler struct {
	BaseHandler
	orders  OrderAdmin
	reviews Reviews
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders OrderAdmin, reviews Reviews) *OrderHandler {
	return &OrderHandler{orders: orders, reviews: reviews}
}

// GetOrder godoc
// @Summary      Get an order by ID
// @Tags         admin-orders
// @Produce      json
// @Param        id path string true "Order ID" format(uuid)
// @Success      200 {object} dto.Response{data=apptrade.OrderResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// ListOrders godoc
// @Summary      List orders
// @Tags         admin-orders
// @Produce      json
// @Param        filter query apptrade.OrderListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]apptrade.OrderResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filter apptrade.OrderListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.orders.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetSale godoc
// @Summary      Get a sale by ID
// @Tags         admin-orders
// @Produce      json
// @Param        id path string true "Sale ID" format(uuid)
// @Success      200 {object} dto.Response{data=apptrade.SaleResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/sales/{id} [get]
func (h *OrderHandler) GetSale(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	sale, err := h.orders.GetSale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// ListSales godoc
// @Summary      List sales
// @Tags         admin-orders
// @Produce      json
// @Param        filter query apptrade.SaleListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]apptrade.SaleResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/sales [get]
func (h *OrderHandler) ListSales(c *gin.Context) {
	var filter apptrade.SaleListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.orders.ListSales(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// ListReviews godoc
// @Summary      List reviews
// @Tags         admin-orders
// @Produce      json
// @Param        filter query appreview.ReviewListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]appreview.ReviewResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/reviews [get]
func (h *OrderHandler) ListReviews(c *gin.Context) {
	var filter appreview.ReviewListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.reviews.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         admin-orders
// @Produce      json
// @Param        id path string true "Review ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/reviews/{id} [delete]
func (h *OrderHandler) DeleteReview(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
