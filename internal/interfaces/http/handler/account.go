package handler

import (
	apptrade "github.com/amunitsiia/shop/internal/application/trade"
	"github.com/gin-gonic/gin"
)

// AccountHandler serves a user's own account page
type AccountHandler struct {
	BaseHandler
	accounts Accounts
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts Accounts) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Get returns the contact form and order history
// @Summary      Get the account page
// @Tags         account
// @Produce      json
// @Param        id path string true "Account ID" format(uuid)
// @Success      200 {object} dto.Response{data=appidentity.AccountResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /account/{id} [get]
func (h *AccountHandler) Get(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	accountID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.accounts.GetAccount(c.Request.Context(), userID, accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update saves the buyer contact details
// @Summary      Update the buyer contact details
// @Tags         account
// @Accept       json
// @Produce      json
// @Param        id path string true "Account ID" format(uuid)
// @Param        request body apptrade.ContactForm true "Request body"
// @Success      200 {object} dto.Response{data=appidentity.AccountResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /account/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	userID, ok := h.requireUser(c)
	if !ok {
		return
	}
	accountID, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req apptrade.ContactForm
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.accounts.UpdateAccount(c.Request.Context(), userID, accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
