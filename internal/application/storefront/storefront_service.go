package storefront

import (
	"context"
	"errors"
	"strings"
	"time"

	appcatalog "github.com/amunitsiia/shop/internal/application/catalog"
	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/amunitsiia/shop/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// searchLimit caps the number of search hits
const searchLimit = 100

// StaticPageTitles lists the informational pages and their titles
var StaticPageTitles = map[string]string{
	"about":           "Про нас",
	"terms":           "Умови використання сайту",
	"contacts":        "Контакти",
	"help":            "Допомога",
	"delivery":        "Доставка",
	"credit":          "Кредит",
	"return":          "Повернення товару",
	"service-centers": "Сервісні центри",
	"partners":        "Партнерам",
}

// Options tune listing sizes and the price filter ceiling
type Options struct {
	PageSize         int
	TopProductsLimit int
	PriceCeiling     int64
}

// Service assembles the public shop pages
type Service struct {
	nav          *NavigationService
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	featureRepo  catalog.ProductFeatureRepository
	imageRepo    catalog.ProductImageRepository
	pageRepo     catalog.PageRepository
	reviews      ReviewReader
	carts        CartRestorer
	images       ImageURLs
	opts         Options
	logger       *zap.Logger
}

// NewService creates a new storefront Service
func NewService(
	nav *NavigationService,
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	featureRepo catalog.ProductFeatureRepository,
	imageRepo catalog.ProductImageRepository,
	pageRepo catalog.PageRepository,
	reviews ReviewReader,
	carts CartRestorer,
	images ImageURLs,
	opts Options,
	logger *zap.Logger,
) *Service {
	if opts.PageSize <= 0 {
		opts.PageSize = 20
	}
	if opts.TopProductsLimit <= 0 {
		opts.TopProductsLimit = 100
	}
	if opts.PriceCeiling <= 0 {
		opts.PriceCeiling = 100000000
	}
	return &Service{
		nav:          nav,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		featureRepo:  featureRepo,
		imageRepo:    imageRepo,
		pageRepo:     pageRepo,
		reviews:      reviews,
		carts:        carts,
		images:       images,
		opts:         opts,
		logger:       logger.Named("storefront"),
	}
}

// Navigation returns the shop menu
func (s *Service) Navigation(ctx context.Context) (*Navigation, error) {
	return s.nav.Navigation(ctx)
}

// Home lists the most viewed products
func (s *Service) Home(ctx context.Context, page int, visitor Visitor) (*HomeResponse, error) {
	layout, err := s.layout(ctx, HomeTitle, visitor)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.FindAll(ctx, topFilter(s.opts.TopProductsLimit, nil))
	if err != nil {
		return nil, err
	}
	window, meta, err := paginate(products, page, s.opts.PageSize)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards(ctx, window)
	if err != nil {
		return nil, err
	}

	cart := trade.Cart{}
	if visitor.RestoreCart && visitor.UserID != nil {
		restored, err := s.carts.RestoreCart(ctx, *visitor.UserID)
		if err != nil {
			return nil, err
		}
		if restored != nil {
			cart = restored
		}
	}

	return &HomeResponse{
		Layout:    *layout,
		Products:  cards,
		Meta:      meta,
		PageRange: PageRange(meta.Page, meta.TotalPages),
		CartJSON:  cart,
	}, nil
}

// CategoryPage lists the products of a category. An unknown slug shows the
// first category with no products.
func (s *Service) CategoryPage(ctx context.Context, slug string, filter CategoryFilter, page int, visitor Visitor) (*CategoryPageResponse, error) {
	layout, err := s.layout(ctx, "", visitor)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	resp := &CategoryPageResponse{
		Layout:   *layout,
		Brands:   []string{},
		Products: []ProductCard{},
		Meta:     PageMeta{Page: 1, PageSize: s.opts.PageSize},
	}

	if category == nil {
		if len(layout.Navigation.Categories) == 0 {
			return nil, shared.ErrNotFound.WithMessage("Category not found")
		}
		first := layout.Navigation.Categories[0]
		resp.Title = first.Name
		resp.Category = first
		resp.Categories = layout.Navigation.Categories
		return resp, nil
	}

	resp.Title = category.Name
	resp.Category = appcatalog.ToCategoryResponse(category)
	resp.Categories = siblings(layout.Navigation.Categories, category.SuperCategoryID)

	brands, err := s.productRepo.BrandNames(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	if brands != nil {
		resp.Brands = brands
	}

	query := s.categoryFilter(category.ID, filter)
	total, err := s.productRepo.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	meta, err := pageMeta(total, page, s.opts.PageSize)
	if err != nil {
		return nil, err
	}
	query.Page = meta.Page
	products, err := s.productRepo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}
	if resp.Products, err = s.cards(ctx, products); err != nil {
		return nil, err
	}
	resp.Meta = meta
	resp.PageRange = PageRange(meta.Page, meta.TotalPages)
	return resp, nil
}

// SuperCategoryPage lists the categories of one super category
func (s *Service) SuperCategoryPage(ctx context.Context, id uuid.UUID, page int, visitor Visitor) (*SuperCategoryPageResponse, error) {
	layout, err := s.layout(ctx, GeneralCategoryTitle, visitor)
	if err != nil {
		return nil, err
	}

	categories := make([]appcatalog.CategoryResponse, 0)
	for _, c := range layout.Navigation.Categories {
		if c.SuperCategoryID == id {
			categories = append(categories, c)
		}
	}
	if len(categories) > 0 && categories[0].SuperCategory != nil {
		layout.Title = categories[0].SuperCategory.Name
	}

	window, meta, err := paginate(categories, page, s.opts.PageSize)
	if err != nil {
		return nil, err
	}
	return &SuperCategoryPageResponse{
		Layout:     *layout,
		Categories: window,
		Meta:       meta,
		PageRange:  PageRange(meta.Page, meta.TotalPages),
	}, nil
}

// ProductPage shows one product and records the visit
func (s *Service) ProductPage(ctx context.Context, slug string, visitor Visitor) (*ProductPageResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.productRepo.RecordAccess(ctx, product.ID, now); err != nil {
		s.logger.Warn("failed to record product access", zap.String("product_id", product.ID.String()), zap.Error(err))
	} else {
		product.RecordAccess(now)
	}

	layout, err := s.layout(ctx, product.Name, visitor)
	if err != nil {
		return nil, err
	}

	features, err := s.featureRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	images, err := s.imageRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ProductReviews(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	resp := &ProductPageResponse{
		Layout:     *layout,
		Product:    appcatalog.ToProductResponse(product),
		Features:   make([]appcatalog.ProductFeatureResponse, len(features)),
		Images:     make([]appcatalog.ImageResponse, len(images)),
		Reviews:    reviews.Reviews,
		Evaluation: reviews.Evaluation,
	}
	for i := range features {
		resp.Features[i] = appcatalog.ToProductFeatureResponse(&features[i])
	}
	for i, img := range images {
		resp.Images[i] = appcatalog.ImageResponse{
			ID:        img.ID,
			ProductID: img.ProductID,
			Key:       img.Image,
			URL:       s.images.PublicURL(img.Image),
		}
	}
	for _, c := range layout.Navigation.Categories {
		if c.ID == product.CategoryID {
			resp.SuperCategory = c.SuperCategory
			break
		}
	}
	return resp, nil
}

// Search finds the most viewed products whose name contains q
func (s *Service) Search(ctx context.Context, q string, page int, visitor Visitor) (*SearchResponse, error) {
	layout, err := s.layout(ctx, SearchTitle, visitor)
	if err != nil {
		return nil, err
	}
	q = strings.TrimSpace(q)
	products, err := s.productRepo.FindAll(ctx, topFilter(searchLimit, map[string]interface{}{"name_contains": q}))
	if err != nil {
		return nil, err
	}
	window, meta, err := paginate(products, page, s.opts.PageSize)
	if err != nil {
		return nil, err
	}
	cards, err := s.cards(ctx, window)
	if err != nil {
		return nil, err
	}
	return &SearchResponse{
		Layout:    *layout,
		Query:     q,
		Products:  cards,
		Meta:      meta,
		PageRange: PageRange(meta.Page, meta.TotalPages),
	}, nil
}

// StaticPage returns an informational page. A known page without stored
// content is returned with an empty body.
func (s *Service) StaticPage(ctx context.Context, name string, visitor Visitor) (*StaticPageResponse, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	title, ok := StaticPageTitles[name]
	if !ok {
		return nil, shared.ErrNotFound.WithMessage("Page not found")
	}
	layout, err := s.layout(ctx, title, visitor)
	if err != nil {
		return nil, err
	}

	resp := &StaticPageResponse{Layout: *layout, Page: appcatalog.PageResponse{Name: name}}
	page, err := s.pageRepo.FindByName(ctx, name)
	switch {
	case err == nil:
		resp.Page = appcatalog.ToPageResponse(page)
	case !errors.Is(err, shared.ErrNotFound):
		return nil, err
	}
	return resp, nil
}

func (s *Service) layout(ctx context.Context, title string, visitor Visitor) (*Layout, error) {
	nav, err := s.nav.Navigation(ctx)
	if err != nil {
		return nil, err
	}
	return &Layout{
		Title:      title,
		CartItems:  CartItemCount(visitor.CartCookie),
		Navigation: *nav,
	}, nil
}

func (s *Service) categoryFilter(categoryID uuid.UUID, filter CategoryFilter) shared.Filter {
	low := int64(0)
	if filter.Low != nil {
		low = *filter.Low
	}
	high := s.opts.PriceCeiling
	if filter.High != nil {
		high = *filter.High
	}
	filters := map[string]interface{}{
		"category_id": categoryID,
		"min_price":   decimal.NewFromInt(low),
		"max_price":   decimal.NewFromInt(high),
	}
	if brands := uniqueNames(filter.Brands); len(brands) > 0 {
		filters["brand_names"] = brands
	}
	return shared.Filter{
		Page:     1,
		PageSize: s.opts.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  filters,
	}
}

func (s *Service) cards(ctx context.Context, products []catalog.Product) ([]ProductCard, error) {
	cards := make([]ProductCard, len(products))
	if len(products) == 0 {
		return cards, nil
	}
	ids := make([]uuid.UUID, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}
	first, err := s.imageRepo.FirstImages(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		cards[i] = ProductCard{ProductResponse: appcatalog.ToProductResponse(&products[i])}
		if key, ok := first[products[i].ID]; ok && key != "" {
			cards[i].ImageURL = s.images.PublicURL(key)
		}
	}
	return cards, nil
}

// CartItemCount sums the quantities in a cart cookie. A malformed cookie
// counts as an empty cart.
func CartItemCount(raw string) int {
	cart, err := trade.ParseCart(raw)
	if err != nil {
		return 0
	}
	return cart.ItemCount()
}

func topFilter(limit int, filters map[string]interface{}) shared.Filter {
	if filters == nil {
		filters = map[string]interface{}{}
	}
	return shared.Filter{
		Page:     1,
		PageSize: limit,
		OrderBy:  "access_number",
		OrderDir: "desc",
		Filters:  filters,
	}
}

func siblings(all []appcatalog.CategoryResponse, superCategoryID uuid.UUID) []appcatalog.CategoryResponse {
	out := make([]appcatalog.CategoryResponse, 0)
	for _, c := range all {
		if c.SuperCategoryID == superCategoryID {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func pageMeta(total int64, page, pageSize int) (PageMeta, error) {
	if page < 1 {
		page = 1
	}
	pages := totalPages(total, pageSize)
	if page > 1 && page > pages {
		return PageMeta{}, shared.ErrNotFound.WithMessage("Page not found")
	}
	return PageMeta{Total: total, Page: page, PageSize: pageSize, TotalPages: pages}, nil
}

func paginate[T any](items []T, page, pageSize int) ([]T, PageMeta, error) {
	meta, err := pageMeta(int64(len(items)), page, pageSize)
	if err != nil {
		return nil, meta, err
	}
	start := (meta.Page - 1) * pageSize
	if start >= len(items) {
		return make([]T, 0), meta, nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta, nil
}
