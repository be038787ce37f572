package catalog

import (
	"context"
	"strings"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/partner"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrImageNotUploaded is returned when an image is registered before its object exists
var ErrImageNotUploaded = shared.NewDomainError("IMAGE_NOT_UPLOADED", "Image has not been uploaded")

// productImageKind prefixes the object keys of product images
const productImageKind = "product"

// ProductService manages products with their suppliers, features and images
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	brandRepo    catalog.BrandRepository
	supplierRepo partner.SupplierRepository
	featureRepo  catalog.ProductFeatureRepository
	imageRepo    catalog.ProductImageRepository
	storage      ObjectStorage
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	brandRepo catalog.BrandRepository,
	supplierRepo partner.SupplierRepository,
	featureRepo catalog.ProductFeatureRepository,
	imageRepo catalog.ProductImageRepository,
	storage ObjectStorage,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		supplierRepo: supplierRepo,
		featureRepo:  featureRepo,
		imageRepo:    imageRepo,
		storage:      storage,
		logger:       logger.Named("product"),
	}
}

// Create creates a product. New products are sold out until stock arrives.
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*ProductResponse, error) {
	req.SupplierIDs = uniqueIDs(req.SupplierIDs)
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	p, err := catalog.NewProduct(req.details())
	if err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, p.Slug, nil); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	if len(req.SupplierIDs) > 0 {
		if err := s.productRepo.ReplaceSuppliers(ctx, p.ID, req.SupplierIDs); err != nil {
			return nil, err
		}
		p.SupplierIDs = req.SupplierIDs
	}

	s.logger.Info("product created",
		zap.String("product_id", p.ID.String()),
		zap.String("slug", p.Slug),
	)
	resp := ToProductResponse(p)
	return &resp, nil
}

// Get returns a product with its suppliers, features and images
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductDetailResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.SupplierIDs, err = s.productRepo.FindSupplierIDs(ctx, id); err != nil {
		return nil, err
	}
	features, err := s.ListFeatures(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := s.ListImages(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetailResponse{
		ProductResponse: ToProductResponse(p),
		Features:        features,
		Images:          images,
	}, nil
}

// List lists products with search, filters and pagination
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, int64, error) {
	f := listFilter(filter.Page, filter.PageSize, filter.OrderBy, filter.OrderDir)
	f.Search = filter.Search
	if filter.CategoryID != nil {
		f.Filters["category_id"] = *filter.CategoryID
	}
	if filter.BrandID != nil {
		f.Filters["brand_id"] = *filter.BrandID
	}
	if filter.Sold != nil {
		f.Filters["sold"] = *filter.Sold
	}

	products, err := s.productRepo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.productRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	items := make([]ProductResponse, len(products))
	for i := range products {
		items[i] = ToProductResponse(&products[i])
	}
	return items, total, nil
}

// Update replaces the product attributes. Moving a product to another
// category drops its feature values.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req ProductRequest) (*ProductResponse, error) {
	p, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.SupplierIDs = uniqueIDs(req.SupplierIDs)
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	previousCategory := p.CategoryID
	if err := p.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.ensureSlug(ctx, p.Slug, &p.ID); err != nil {
		return nil, err
	}
	if err := s.productRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	if previousCategory != p.CategoryID {
		if err := s.featureRepo.ReplaceForProduct(ctx, p.ID, nil); err != nil {
			return nil, err
		}
	}
	if req.SupplierIDs != nil {
		if err := s.productRepo.ReplaceSuppliers(ctx, p.ID, req.SupplierIDs); err != nil {
			return nil, err
		}
		p.SupplierIDs = req.SupplierIDs
	}
	resp := ToProductResponse(p)
	return &resp, nil
}

// Delete removes a product with its images
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	images, err := s.imageRepo.FindByProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	for _, img := range images {
		s.deleteObject(ctx, img.Image)
	}
	return nil
}

// SetSuppliers replaces the suppliers of a product
func (s *ProductService) SetSuppliers(ctx context.Context, productID uuid.UUID, req SetSuppliersRequest) error {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return err
	}
	ids := uniqueIDs(req.SupplierIDs)
	if err := s.checkSuppliers(ctx, ids); err != nil {
		return err
	}
	return s.productRepo.ReplaceSuppliers(ctx, productID, ids)
}

// SetFeatures replaces the characteristics of a product. Every value must
// refer to a feature defined for the product's category.
func (s *ProductService) SetFeatures(ctx context.Context, productID uuid.UUID, req SetFeaturesRequest) ([]ProductFeatureResponse, error) {
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	defs, err := s.categoryRepo.FindFeatures(ctx, p.CategoryID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*catalog.CategoryFeature, len(defs))
	for i := range defs {
		byID[defs[i].ID] = &defs[i]
	}

	features := make([]catalog.ProductFeature, 0, len(req.Features))
	for _, v := range req.Features {
		def, ok := byID[v.CategoryFeatureID]
		if !ok {
			def, err = s.categoryRepo.FindFeatureByID(ctx, v.CategoryFeatureID)
			if err != nil {
				return nil, err
			}
		}
		f, err := catalog.NewProductFeature(p, def, strings.TrimSpace(v.Feature))
		if err != nil {
			return nil, err
		}
		features = append(features, *f)
	}
	if err := s.featureRepo.ReplaceForProduct(ctx, productID, features); err != nil {
		return nil, err
	}

	items := make([]ProductFeatureResponse, len(features))
	for i := range features {
		items[i] = ToProductFeatureResponse(&features[i])
	}
	return items, nil
}

// ListFeatures lists the characteristics of a product
func (s *ProductService) ListFeatures(ctx context.Context, productID uuid.UUID) ([]ProductFeatureResponse, error) {
	features, err := s.featureRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]ProductFeatureResponse, len(features))
	for i := range features {
		items[i] = ToProductFeatureResponse(&features[i])
	}
	return items, nil
}

// RequestImageUpload presigns an upload for a new product image.
// The object key is "product_<product name slug>/<file name>".
func (s *ProductService) RequestImageUpload(ctx context.Context, productID uuid.UUID, req UploadURLRequest) (*UploadURLResponse, error) {
	if !strings.HasPrefix(req.ContentType, "image/") {
		return nil, shared.ErrInvalidInput.WithMessage("Only images can be uploaded")
	}
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	key := catalog.UploadPath(productImageKind, p.Name, req.Filename)
	if strings.HasSuffix(key, "/") {
		return nil, shared.ErrInvalidInput.WithMessage("File name is required")
	}

	url, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, req.ContentType, 0)
	if err != nil {
		return nil, err
	}
	return &UploadURLResponse{UploadURL: url, Key: key, ExpiresAt: expiresAt}, nil
}

// RegisterImage attaches an uploaded object to the product
func (s *ProductService) RegisterImage(ctx context.Context, productID uuid.UUID, req RegisterImageRequest) (*ImageResponse, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	exists, err := s.storage.ObjectExists(ctx, req.Key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrImageNotUploaded
	}
	img, err := catalog.NewProductImage(productID, req.Key)
	if err != nil {
		return nil, err
	}
	if err := s.imageRepo.Save(ctx, img); err != nil {
		return nil, err
	}
	resp := s.toImageResponse(img)
	return &resp, nil
}

// ListImages lists the images of a product in upload order
func (s *ProductService) ListImages(ctx context.Context, productID uuid.UUID) ([]ImageResponse, error) {
	images, err := s.imageRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	items := make([]ImageResponse, len(images))
	for i := range images {
		items[i] = s.toImageResponse(&images[i])
	}
	return items, nil
}

// DeleteImage removes a product image and its stored object
func (s *ProductService) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) error {
	img, err := s.imageRepo.FindByID(ctx, imageID)
	if err != nil {
		return err
	}
	if img.ProductID != productID {
		return shared.ErrNotFound
	}
	if err := s.imageRepo.Delete(ctx, imageID); err != nil {
		return err
	}
	s.deleteObject(ctx, img.Image)
	return nil
}

func (s *ProductService) toImageResponse(img *catalog.ProductImage) ImageResponse {
	return ImageResponse{
		ID:        img.ID,
		ProductID: img.ProductID,
		Key:       img.Image,
		URL:       s.storage.PublicURL(img.Image),
	}
}

func (s *ProductService) deleteObject(ctx context.Context, key string) {
	if err := s.storage.DeleteObject(ctx, key); err != nil {
		s.logger.Warn("failed to delete image object", zap.String("key", key), zap.Error(err))
	}
}

func (s *ProductService) checkReferences(ctx context.Context, req ProductRequest) error {
	if _, err := s.categoryRepo.FindByID(ctx, req.CategoryID); err != nil {
		return err
	}
	if req.BrandID != nil {
		if _, err := s.brandRepo.FindByID(ctx, *req.BrandID); err != nil {
			return err
		}
	}
	return s.checkSuppliers(ctx, req.SupplierIDs)
}

func (s *ProductService) checkSuppliers(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.supplierRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return shared.ErrNotFound.WithMessage("Supplier not found")
	}
	return nil
}

func (s *ProductService) ensureSlug(ctx context.Context, slug string, excludeID *uuid.UUID) error {
	exists, err := s.productRepo.ExistsBySlug(ctx, slug, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return shared.ErrAlreadyExists.WithMessage("Product with this slug already exists")
	}
	return nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
