package handler

import (
	"net/http"
	"strings"

	appreview "github.com/amunitsiia/shop/internal/application/review"
	"github.com/amunitsiia/shop/internal/application/storefront"
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/amunitsiia/shop/internal/interfaces/http/dto"
	"github.com/amunitsiia/shop/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ShopHandler serves the public storefront: pages, reviews, cart and checkout
type ShopHandler struct {
	BaseHandler
	pages    Storefront
	reviews  Reviews
	carts    Carts
	checkout Checkout
	cookies  CartCookies
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(pages Storefront, reviews Reviews, carts Carts, checkout Checkout, cookies CartCookies) *ShopHandler {
	return &ShopHandler{
		pages:    pages,
		reviews:  reviews,
		carts:    carts,
		checkout: checkout,
		cookies:  cookies,
	}
}

// SearchQuery is the product search request
type SearchQuery struct {
	Q    string `form:"q" binding:"max=150"`
	Page int    `form:"page" binding:"omitempty,min=1"`
}

func (h *ShopHandler) visitor(c *gin.Context) storefront.Visitor {
	return storefront.Visitor{
		UserID:      middleware.GetJWTUserID(c),
		CartCookie:  h.cookies.Raw(c),
		RestoreCart: h.cookies.RestoreRequested(c),
	}
}

// customer returns the signed-in buyer identity, nil for anonymous visitors
func (h *ShopHandler) customer(c *gin.Context) *apptrade.Customer {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		return nil
	}
	id, err := claims.GetUserUUID()
	if err != nil {
		return nil
	}
	return &apptrade.Customer{UserID: id, Username: claims.Username, Email: claims.Email}
}

// Navigation returns the cached menu
// @Summary      Get the navigation menu
// @Tags         shop
// @Produce      json
// @Success      200 {object} dto.Response{data=storefront.Navigation}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/navigation [get]
func (h *ShopHandler) Navigation(c *gin.Context) {
	nav, err := h.pages.Navigation(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, nav)
}

// Home lists the most visited products. After sign-in the restored server
// cart is also written back to the cart cookie.
// @Summary      Most visited products
// @Tags         shop
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} dto.Response{data=storefront.HomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/home [get]
func (h *ShopHandler) Home(c *gin.Context) {
	page, ok := h.pageNumber(c)
	if !ok {
		return
	}
	resp, err := h.pages.Home(c.Request.Context(), page, h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if !resp.CartJSON.IsEmpty() {
		h.cookies.SetCart(c, resp.CartJSON)
	}
	h.Success(c, resp)
}

// Category lists a category with the filter taken from the query string
// @Summary      List a category
// @Tags         shop
// @Produce      json
// @Param        slug path string true "Category slug"
// @Param        filter query storefront.CategoryFilter false "Brand and price filter"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} dto.Response{data=storefront.CategoryPageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/categories/{slug} [get]
func (h *ShopHandler) Category(c *gin.Context) {
	var filter storefront.CategoryFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	h.category(c, filter)
}

// FilterCategory lists a category with the filter taken from the JSON body
// @Summary      List a category with a posted filter
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        slug path string true "Category slug"
// @Param        request body storefront.CategoryFilter true "Brand and price filter"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} dto.Response{data=storefront.CategoryPageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/categories/{slug}/filter [post]
func (h *ShopHandler) FilterCategory(c *gin.Context) {
	var filter storefront.CategoryFilter
	if !h.bindJSON(c, &filter) {
		return
	}
	h.category(c, filter)
}

func (h *ShopHandler) category(c *gin.Context, filter storefront.CategoryFilter) {
	page, ok := h.pageNumber(c)
	if !ok {
		return
	}
	resp, err := h.pages.CategoryPage(c.Request.Context(), c.Param("slug"), filter, page, h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SuperCategory lists the categories of a super category
// @Summary      List the categories of a super category
// @Tags         shop
// @Produce      json
// @Param        id path string true "Super category ID" format(uuid)
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} dto.Response{data=storefront.SuperCategoryPageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/super-categories/{id} [get]
func (h *ShopHandler) SuperCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	page, ok := h.pageNumber(c)
	if !ok {
		return
	}
	resp, err := h.pages.SuperCategoryPage(c.Request.Context(), id, page, h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Product shows a product page and counts the visit
// @Summary      Get a product page
// @Tags         shop
// @Produce      json
// @Param        slug path string true "Product slug"
// @Success      200 {object} dto.Response{data=storefront.ProductPageResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/products/{slug} [get]
func (h *ShopHandler) Product(c *gin.Context) {
	resp, err := h.pages.ProductPage(c.Request.Context(), c.Param("slug"), h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// AddReview posts a review; anonymous reviews are allowed
// @Summary      Post a product review
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        slug path string true "Product slug"
// @Param        request body appreview.AddReviewRequest true "Request body"
// @Success      201 {object} dto.Response{data=appreview.ReviewResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/products/{slug}/reviews [post]
func (h *ShopHandler) AddReview(c *gin.Context) {
	var req appreview.AddReviewRequest
	if !h.bindJSON(c, &req) {
		return
	}
	review, err := h.reviews.AddReview(c.Request.Context(), c.Param("slug"), middleware.GetJWTUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, review)
}

// LikeReview likes or dislikes a review once per user
// @Summary      Like or dislike a review
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        id path string true "Review ID" format(uuid)
// @Param        request body appreview.LikeRequest true "Request body"
// @Success      200 {object} dto.Response{data=appreview.LikeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shop/reviews/{id}/like [post]
func (h *ShopHandler) LikeReview(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	reviewID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appreview.LikeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.reviews.ToggleLike(c.Request.Context(), reviewID, userID, *req.Like)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Search finds products by name
// @Summary      Search products by name
// @Tags         shop
// @Produce      json
// @Param        q query string true "Search text"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} dto.Response{data=storefront.SearchResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/search [get]
func (h *ShopHandler) Search(c *gin.Context) {
	var q SearchQuery
	if !h.bindQuery(c, &q) {
		return
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	resp, err := h.pages.Search(c.Request.Context(), strings.TrimSpace(q.Q), page, h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// StaticPage returns an informational page
// @Summary      Get an informational page
// @Tags         shop
// @Produce      json
// @Param        name path string true "Page name" Enums(about, terms, contacts, help, delivery, credit, return, service-centers, partners)
// @Success      200 {object} dto.Response{data=storefront.StaticPageResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/pages/{name} [get]
func (h *ShopHandler) StaticPage(c *gin.Context) {
	resp, err := h.pages.StaticPage(c.Request.Context(), c.Param("name"), h.visitor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Cart shows the cookie cart with current prices
// @Summary      Get the cookie cart
// @Tags         shop
// @Produce      json
// @Success      200 {object} dto.Response{data=apptrade.CartResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/cart [get]
func (h *ShopHandler) Cart(c *gin.Context) {
	cart, err := h.cookies.Cart(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	resp, err := h.carts.GetCart(c.Request.Context(), cart)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateCartItem adds or removes one unit in the signed-in buyer's open order
// @Summary      Add or remove one unit in the server cart
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        request body apptrade.UpdateItemRequest true "Request body"
// @Success      200 {object} dto.Response{data=apptrade.UpdateItemResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shop/cart/items [post]
func (h *ShopHandler) UpdateCartItem(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	var req apptrade.UpdateItemRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.carts.UpdateItem(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// PrepareCheckout returns the stock-checked cart and the form prefill
// @Summary      Check the cart and prefill the checkout form
// @Tags         shop
// @Produce      json
// @Success      200 {object} dto.Response{data=apptrade.CheckoutResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/checkout [get]
func (h *ShopHandler) PrepareCheckout(c *gin.Context) {
	cart, err := h.cookies.Cart(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	resp, err := h.checkout.Prepare(c.Request.Context(), h.customer(c), cart)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp.Message != "" {
		h.writeCart(c, resp.Cart)
	}
	h.Success(c, resp)
}

// Checkout completes the purchase. A cart changed by the stock check is
// written back to the cookie; a completed purchase empties it.
// @Summary      Complete the purchase
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        request body apptrade.CheckoutForm true "Request body"
// @Success      200 {object} dto.Response{data=apptrade.CheckoutResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /shop/checkout [post]
func (h *ShopHandler) Checkout(c *gin.Context) {
	var form apptrade.CheckoutForm
	bindErr := c.ShouldBindJSON(&form)
	details := middleware.FormatValidationErrors(bindErr)
	if bindErr != nil && details == nil {
		middleware.HandleValidationError(c, bindErr)
		return
	}
	raw := form.Cart
	if raw == "" {
		raw = h.cookies.Raw(c)
	}
	cart, err := trade.ParseCart(raw)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if details != nil {
		h.rejectCheckout(c, form, cart, details)
		return
	}

	resp, err := h.checkout.Submit(c.Request.Context(), h.customer(c), form, cart)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	switch {
	case resp.Completed:
		h.cookies.ResetCart(c)
	case resp.Message != "":
		h.writeCart(c, resp.Cart)
	}
	h.Success(c, resp)
}

// rejectCheckout answers an invalid form with the field errors next to the
// stock-checked cart, so nothing is sold and the cart is still corrected.
func (h *ShopHandler) rejectCheckout(c *gin.Context, form apptrade.CheckoutForm, cart trade.Cart, details []dto.ValidationDetail) {
	resp, err := h.checkout.Revise(c.Request.Context(), form, cart)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if resp.Message != "" {
		h.writeCart(c, resp.Cart)
	}
	body := dto.NewValidationErrorResponse("Request validation failed", middleware.GetRequestID(c), details)
	body.Data = resp
	c.JSON(http.StatusBadRequest, body)
}

func (h *ShopHandler) writeCart(c *gin.Context, encoded string) {
	cart, err := trade.ParseCart(encoded)
	if err != nil {
		return
	}
	h.cookies.SetCart(c, cart)
}
