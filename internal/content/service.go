package content

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachbooking/internal/shared/constants"
	"coachbooking/pkg/cache"
)

var (
	ErrNewsNotFound   = errors.New("news post not found")
	ErrBannerNotFound = errors.New("banner not found")
	ErrPageNotFound   = errors.New("page not found")
)

type Service interface {
	// News
	CreateNews(ctx context.Context, req CreateNewsRequest) (*NewsPost, error)
	GetNews(ctx context.Context, idOrSlug string) (*NewsPost, error)
	ListNews(ctx context.Context, includeUnpublished bool) ([]NewsPost, error)
	UpdateNews(ctx context.Context, id string, req UpdateNewsRequest) (*NewsPost, error)
	DeleteNews(ctx context.Context, id string) error

	// Banners
	CreateBanner(ctx context.Context, req CreateBannerRequest) (*Banner, error)
	ListBanners(ctx context.Context, includeInactive bool) ([]Banner, error)
	UpdateBanner(ctx context.Context, id string, req UpdateBannerRequest) (*Banner, error)
	DeleteBanner(ctx context.Context, id string) error

	// Static pages
	CreatePage(ctx context.Context, req CreatePageRequest) (*StaticPage, error)
	GetPageBySlug(ctx context.Context, slug string) (*StaticPage, error)
	ListPages(ctx context.Context) ([]StaticPage, error)
	UpdatePage(ctx context.Context, id string, req UpdatePageRequest) (*StaticPage, error)
	DeletePage(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateNews(ctx context.Context, req CreateNewsRequest) (*NewsPost, error) {
	post := &NewsPost{
		Title:      req.Title,
		Slug:       req.Slug,
		Summary:    req.Summary,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Published:  req.Published,
	}
	if req.Published {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := s.repo.CreateNews(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateNews(ctx)
	return post, nil
}

// GetNews resolves by id first, falling back to slug so public links
// can use either form.
func (s *service) GetNews(ctx context.Context, idOrSlug string) (*NewsPost, error) {
	if id, err := uuid.Parse(idOrSlug); err == nil {
		post, err := s.repo.GetNewsByID(ctx, id)
		return post, mapNotFound(err, ErrNewsNotFound)
	}
	post, err := s.repo.GetNewsBySlug(ctx, idOrSlug)
	return post, mapNotFound(err, ErrNewsNotFound)
}

func (s *service) ListNews(ctx context.Context, includeUnpublished bool) ([]NewsPost, error) {
	if includeUnpublished {
		return s.repo.ListNews(ctx, false)
	}
	var posts []NewsPost
	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_NEWS_LIST, constants.TTL_SEMI_STATIC_MEDIUM,
			func() (interface{}, error) { return s.repo.ListNews(ctx, true) }, &posts)
		if err == nil {
			return posts, nil
		}
	}
	return s.repo.ListNews(ctx, true)
}

func (s *service) UpdateNews(ctx context.Context, id string, req UpdateNewsRequest) (*NewsPost, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNewsNotFound
	}
	post, err := s.repo.GetNewsByID(ctx, postID)
	if err != nil {
		return nil, mapNotFound(err, ErrNewsNotFound)
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Summary != nil {
		post.Summary = *req.Summary
	}
	if req.Body != nil {
		post.Body = *req.Body
	}
	if req.CoverImage != nil {
		post.CoverImage = *req.CoverImage
	}
	if req.Published != nil {
		if *req.Published && !post.Published {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *req.Published
	}

	if err := s.repo.UpdateNews(ctx, post); err != nil {
		return nil, err
	}
	s.invalidateNews(ctx)
	return post, nil
}

func (s *service) DeleteNews(ctx context.Context, id string) error {
	postID, err := uuid.Parse(id)
	if err != nil {
		return ErrNewsNotFound
	}
	if _, err := s.repo.GetNewsByID(ctx, postID); err != nil {
		return mapNotFound(err, ErrNewsNotFound)
	}
	if err := s.repo.DeleteNews(ctx, postID); err != nil {
		return err
	}
	s.invalidateNews(ctx)
	return nil
}

func (s *service) CreateBanner(ctx context.Context, req CreateBannerRequest) (*Banner, error) {
	banner := &Banner{
		Title:     req.Title,
		ImageURL:  req.ImageURL,
		LinkURL:   req.LinkURL,
		SortOrder: req.SortOrder,
		Active:    true,
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}
	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		return nil, err
	}
	s.invalidateBanners(ctx)
	return banner, nil
}

func (s *service) ListBanners(ctx context.Context, includeInactive bool) ([]Banner, error) {
	if includeInactive {
		return s.repo.ListBanners(ctx, false)
	}
	var banners []Banner
	if s.cache != nil {
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_BANNERS_LIST, constants.TTL_SEMI_STATIC_MEDIUM,
			func() (interface{}, error) { return s.repo.ListBanners(ctx, true) }, &banners)
		if err == nil {
			return banners, nil
		}
	}
	return s.repo.ListBanners(ctx, true)
}

func (s *service) UpdateBanner(ctx context.Context, id string, req UpdateBannerRequest) (*Banner, error) {
	bannerID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBannerNotFound
	}
	banner, err := s.repo.GetBannerByID(ctx, bannerID)
	if err != nil {
		return nil, mapNotFound(err, ErrBannerNotFound)
	}

	if req.Title != nil {
		banner.Title = *req.Title
	}
	if req.ImageURL != nil {
		banner.ImageURL = *req.ImageURL
	}
	if req.LinkURL != nil {
		banner.LinkURL = *req.LinkURL
	}
	if req.SortOrder != nil {
		banner.SortOrder = *req.SortOrder
	}
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if err := s.repo.UpdateBanner(ctx, banner); err != nil {
		return nil, err
	}
	s.invalidateBanners(ctx)
	return banner, nil
}

func (s *service) DeleteBanner(ctx context.Context, id string) error {
	bannerID, err := uuid.Parse(id)
	if err != nil {
		return ErrBannerNotFound
	}
	if _, err := s.repo.GetBannerByID(ctx, bannerID); err != nil {
		return mapNotFound(err, ErrBannerNotFound)
	}
	if err := s.repo.DeleteBanner(ctx, bannerID); err != nil {
		return err
	}
	s.invalidateBanners(ctx)
	return nil
}

func (s *service) CreatePage(ctx context.Context, req CreatePageRequest) (*StaticPage, error) {
	page := &StaticPage{
		Title:     req.Title,
		Slug:      req.Slug,
		Body:      req.Body,
		Published: true,
	}
	if req.Published != nil {
		page.Published = *req.Published
	}
	if err := s.repo.CreatePage(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *service) GetPageBySlug(ctx context.Context, slug string) (*StaticPage, error) {
	var page StaticPage
	if s.cache != nil {
		key := constants.CACHE_KEY_PAGE_BY_SLUG + slug
		err := s.cache.GetOrSet(ctx, key, constants.TTL_SEMI_STATIC_MEDIUM,
			func() (interface{}, error) { return s.repo.GetPageBySlug(ctx, slug) }, &page)
		if err == nil {
			return &page, nil
		}
	}
	p, err := s.repo.GetPageBySlug(ctx, slug)
	return p, mapNotFound(err, ErrPageNotFound)
}

func (s *service) ListPages(ctx context.Context) ([]StaticPage, error) {
	return s.repo.ListPages(ctx)
}

func (s *service) UpdatePage(ctx context.Context, id string, req UpdatePageRequest) (*StaticPage, error) {
	pageID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrPageNotFound
	}
	page, err := s.repo.GetPageByID(ctx, pageID)
	if err != nil {
		return nil, mapNotFound(err, ErrPageNotFound)
	}

	if req.Title != nil {
		page.Title = *req.Title
	}
	if req.Body != nil {
		page.Body = *req.Body
	}
	if req.Published != nil {
		page.Published = *req.Published
	}

	if err := s.repo.UpdatePage(ctx, page); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_PAGE_BY_SLUG+page.Slug)
	}
	return page, nil
}

func (s *service) DeletePage(ctx context.Context, id string) error {
	pageID, err := uuid.Parse(id)
	if err != nil {
		return ErrPageNotFound
	}
	page, err := s.repo.GetPageByID(ctx, pageID)
	if err != nil {
		return mapNotFound(err, ErrPageNotFound)
	}
	if err := s.repo.DeletePage(ctx, pageID); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_PAGE_BY_SLUG+page.Slug)
	}
	return nil
}

func (s *service) invalidateNews(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_NEWS_LIST)
	}
}

func (s *service) invalidateBanners(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, constants.CACHE_KEY_BANNERS_LIST)
	}
}

func mapNotFound(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
