package handler

import (
	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the back-office catalog: super categories,
// categories with their features, brands and informational pages
type CatalogHandler struct {
	BaseHandler
	categories CategoryAdmin
	brands     BrandAdmin
	pages      PageAdmin
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(categories CategoryAdmin, brands BrandAdmin, pages PageAdmin) *CatalogHandler {
	return &CatalogHandler{categories: categories, brands: brands, pages: pages}
}

// CreateSuperCategory godoc
// @Summary      Create a super category
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        request body appcatalog.SuperCategoryRequest true "Request body"
// @Success      201 {object} dto.Response{data=appcatalog.SuperCategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/super-categories [post]
func (h *CatalogHandler) CreateSuperCategory(c *gin.Context) {
	var req appcatalog.SuperCategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	sc, err := h.categories.CreateSuperCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, sc)
}

// GetSuperCategory godoc
// @Summary      Get a super category by ID
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Super category ID" format(uuid)
// @Success      200 {object} dto.Response{data=appcatalog.SuperCategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/super-categories/{id} [get]
func (h *CatalogHandler) GetSuperCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	sc, err := h.categories.GetSuperCategory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sc)
}

// ListSuperCategories godoc
// @Summary      List super categorys
// @Tags         admin-catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appcatalog.SuperCategoryResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/super-categories [get]
func (h *CatalogHandler) ListSuperCategories(c *gin.Context) {
	list, err := h.categories.ListSuperCategories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// UpdateSuperCategory godoc
// @Summary      Update a super category
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Super category ID" format(uuid)
// @Param        request body appcatalog.SuperCategoryRequest true "Request body"
// @Success      200 {object} dto.Response{data=appcatalog.SuperCategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/super-categories/{id} [put]
func (h *CatalogHandler) UpdateSuperCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appcatalog.SuperCategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	sc, err := h.categories.UpdateSuperCategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sc)
}

// DeleteSuperCategory godoc
// @Summary      Delete a super category
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Super category ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/super-categories/{id} [delete]
func (h *CatalogHandler) DeleteSuperCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.DeleteSuperCategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        request body appcatalog.CategoryRequest true "Request body"
// @Success      201 {object} dto.Response{data=appcatalog.CategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories [post]
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req appcatalog.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cat, err := h.categories.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, cat)
}

// GetCategory godoc
// @Summary      Get a category by ID
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.Response{data=appcatalog.CategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id} [get]
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	cat, err := h.categories.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cat)
}

// ListCategories godoc
// @Summary      List categories
// @Tags         admin-catalog
// @Produce      json
// @Param        filter query appcatalog.CategoryListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]appcatalog.CategoryResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	var filter appcatalog.CategoryListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.categories.ListCategories(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body appcatalog.CategoryRequest true "Request body"
// @Success      200 {object} dto.Response{data=appcatalog.CategoryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id} [put]
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appcatalog.CategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}
	cat, err := h.categories.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cat)
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.categories.DeleteCategory(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddFeature godoc
// @Summary      Add a feature to a category
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body appcatalog.FeatureRequest true "Request body"
// @Success      201 {object} dto.Response{data=appcatalog.FeatureResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id}/features [post]
func (h *CatalogHandler) AddFeature(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appcatalog.FeatureRequest
	if !h.bindJSON(c, &req) {
		return
	}
	f, err := h.categories.AddFeature(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, f)
}

// ListFeatures godoc
// @Summary      List the features of a category
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.Response{data=[]appcatalog.FeatureResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id}/features [get]
func (h *CatalogHandler) ListFeatures(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	list, err := h.categories.ListFeatures(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// DeleteFeature godoc
// @Summary      Delete a category feature
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        featureId path string true "Feature ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/categories/{id}/features/{featureId} [delete]
func (h *CatalogHandler) DeleteFeature(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	featureID, ok := h.pathID(c, "featureId")
	if !ok {
		return
	}
	if err := h.categories.DeleteFeature(c.Request.Context(), id, featureID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateBrand godoc
// @Summary      Create a brand
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        request body appcatalog.BrandRequest true "Request body"
// @Success      201 {object} dto.Response{data=appcatalog.BrandResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/brands [post]
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req appcatalog.BrandRequest
	if !h.bindJSON(c, &req) {
		return
	}
	b, err := h.brands.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, b)
}

// GetBrand godoc
// @Summary      Get a brand by ID
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Brand ID" format(uuid)
// @Success      200 {object} dto.Response{data=appcatalog.BrandResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/brands/{id} [get]
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	b, err := h.brands.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// ListBrands godoc
// @Summary      List brands
// @Tags         admin-catalog
// @Produce      json
// @Param        filter query appcatalog.BrandListFilter false "Filter and pagination"
// @Success      200 {object} dto.Response{data=[]appcatalog.BrandResponse,meta=dto.Meta}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/brands [get]
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	var filter appcatalog.BrandListFilter
	if !h.bindQuery(c, &filter) {
		return
	}
	list, total, err := h.brands.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.listMeta(c, list, total, filter.Page, filter.PageSize)
}

// UpdateBrand godoc
// @Summary      Update a brand
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Brand ID" format(uuid)
// @Param        request body appcatalog.BrandRequest true "Request body"
// @Success      200 {object} dto.Response{data=appcatalog.BrandResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/brands/{id} [put]
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appcatalog.BrandRequest
	if !h.bindJSON(c, &req) {
		return
	}
	b, err := h.brands.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, b)
}

// DeleteBrand godoc
// @Summary      Delete a brand
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Brand ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/brands/{id} [delete]
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.brands.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreatePage godoc
// @Summary      Create a page
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        request body appcatalog.PageRequest true "Request body"
// @Success      201 {object} dto.Response{data=appcatalog.PageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/pages [post]
func (h *CatalogHandler) CreatePage(c *gin.Context) {
	var req appcatalog.PageRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.pages.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, p)
}

// GetPage godoc
// @Summary      Get a page by name
// @Tags         admin-catalog
// @Produce      json
// @Param        name path string true "Page name" Enums(about, terms, contacts, help, delivery, credit, return, service-centers, partners)
// @Success      200 {object} dto.Response{data=appcatalog.PageResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/pages/{name} [get]
func (h *CatalogHandler) GetPage(c *gin.Context) {
	p, err := h.pages.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// ListPages godoc
// @Summary      List pages
// @Tags         admin-catalog
// @Produce      json
// @Success      200 {object} dto.Response{data=[]appcatalog.PageResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/pages [get]
func (h *CatalogHandler) ListPages(c *gin.Context) {
	list, err := h.pages.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// UpdatePage godoc
// @Summary      Update a page
// @Tags         admin-catalog
// @Accept       json
// @Produce      json
// @Param        id path string true "Page ID" format(uuid)
// @Param        request body appcatalog.PageRequest true "Request body"
// @Success      200 {object} dto.Response{data=appcatalog.PageResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/pages/{id} [put]
func (h *CatalogHandler) UpdatePage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var req appcatalog.PageRequest
	if !h.bindJSON(c, &req) {
		return
	}
	p, err := h.pages.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, p)
}

// DeletePage godoc
// @Summary      Delete a page
// @Tags         admin-catalog
// @Produce      json
// @Param        id path string true "Page ID" format(uuid)
// @Success      204 "No Content"
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      500 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/pages/{id} [delete]
func (h *CatalogHandler) DeletePage(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.pages.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
