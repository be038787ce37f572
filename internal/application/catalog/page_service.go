package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/amunitsiia/shop/internal/domain/catalog"
	"github.com/amunitsiia/shop/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PageService manages static page content
type PageService struct {
	pageRepo catalog.PageRepository
	logger   *zap.Logger
}

// NewPageService creates a new PageService
func NewPageService(pageRepo catalog.PageRepository, logger *zap.Logger) *PageService {
	return &PageService{pageRepo: pageRepo, logger: logger.Named("page")}
}

// Create adds content for a page name that has none yet
func (s *PageService) Create(ctx context.Context, req PageRequest) (*PageResponse, error) {
	_, err := s.pageRepo.FindByName(ctx, strings.ToLower(strings.TrimSpace(req.Name)))
	if err == nil {
		return nil, shared.ErrAlreadyExists.WithMessage("Page with this name already exists")
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	p, err := catalog.NewPageData(req.Name)
	if err != nil {
		return nil, err
	}
	req.apply(p)
	if err := s.pageRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToPageResponse(p)
	return &resp, nil
}

// GetByName returns page content by page name
func (s *PageService) GetByName(ctx context.Context, name string) (*PageResponse, error) {
	p, err := s.pageRepo.FindByName(ctx, strings.ToLower(name))
	if err != nil {
		return nil, err
	}
	resp := ToPageResponse(p)
	return &resp, nil
}

// List returns all page content
func (s *PageService) List(ctx context.Context) ([]PageResponse, error) {
	pages, err := s.pageRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]PageResponse, len(pages))
	for i := range pages {
		items[i] = ToPageResponse(&pages[i])
	}
	return items, nil
}

// Update replaces page content. The page name is fixed.
func (s *PageService) Update(ctx context.Context, id uuid.UUID, req PageRequest) (*PageResponse, error) {
	p, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.apply(p)
	if err := s.pageRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	resp := ToPageResponse(p)
	return &resp, nil
}

// Delete removes page content
func (s *PageService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pageRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.pageRepo.Delete(ctx, id)
}
