package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// News
	CreateNews(ctx context.Context, post *NewsPost) error
	GetNewsByID(ctx context.Context, id uuid.UUID) (*NewsPost, error)
	GetNewsBySlug(ctx context.Context, slug string) (*NewsPost, error)
	ListNews(ctx context.Context, publishedOnly bool) ([]NewsPost, error)
	UpdateNews(ctx context.Context, post *NewsPost) error
	DeleteNews(ctx context.Context, id uuid.UUID) error

	// Banners
	CreateBanner(ctx context.Context, banner *Banner) error
	GetBannerByID(ctx context.Context, id uuid.UUID) (*Banner, error)
	ListBanners(ctx context.Context, activeOnly bool) ([]Banner, error)
	UpdateBanner(ctx context.Context, banner *Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	// Static pages
	CreatePage(ctx context.Context, page *StaticPage) error
	GetPageByID(ctx context.Context, id uuid.UUID) (*StaticPage, error)
	GetPageBySlug(ctx context.Context, slug string) (*StaticPage, error)
	ListPages(ctx context.Context) ([]StaticPage, error)
	UpdatePage(ctx context.Context, page *StaticPage) error
	DeletePage(ctx context.Context, id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateNews(ctx context.Context, post *NewsPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *repository) GetNewsByID(ctx context.Context, id uuid.UUID) (*NewsPost, error) {
	var post NewsPost
	if err := r.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) GetNewsBySlug(ctx context.Context, slug string) (*NewsPost, error) {
	var post NewsPost
	if err := r.db.WithContext(ctx).First(&post, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *repository) ListNews(ctx context.Context, publishedOnly bool) ([]NewsPost, error) {
	var posts []NewsPost
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if publishedOnly {
		query = query.Where("published = ?", true)
	}
	err := query.Find(&posts).Error
	return posts, err
}

func (r *repository) UpdateNews(ctx context.Context, post *NewsPost) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *repository) DeleteNews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&NewsPost{}, "id = ?", id).Error
}

func (r *repository) CreateBanner(ctx context.Context, banner *Banner) error {
	return r.db.WithContext(ctx).Create(banner).Error
}

func (r *repository) GetBannerByID(ctx context.Context, id uuid.UUID) (*Banner, error) {
	var banner Banner
	if err := r.db.WithContext(ctx).First(&banner, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &banner, nil
}

func (r *repository) ListBanners(ctx context.Context, activeOnly bool) ([]Banner, error) {
	var banners []Banner
	query := r.db.WithContext(ctx).Order("sort_order ASC, created_at DESC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}
	err := query.Find(&banners).Error
	return banners, err
}

func (r *repository) UpdateBanner(ctx context.Context, banner *Banner) error {
	return r.db.WithContext(ctx).Save(banner).Error
}

func (r *repository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Banner{}, "id = ?", id).Error
}

func (r *repository) CreatePage(ctx context.Context, page *StaticPage) error {
	return r.db.WithContext(ctx).Create(page).Error
}

func (r *repository) GetPageByID(ctx context.Context, id uuid.UUID) (*StaticPage, error) {
	var page StaticPage
	if err := r.db.WithContext(ctx).First(&page, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *repository) GetPageBySlug(ctx context.Context, slug string) (*StaticPage, error) {
	var page StaticPage
	if err := r.db.WithContext(ctx).First(&page, "slug = ? AND published = ?", slug, true).Error; err != nil {
		return nil, err
	}
	return &page, nil
}

func (r *repository) ListPages(ctx context.Context) ([]StaticPage, error) {
	var pages []StaticPage
	err := r.db.WithContext(ctx).Order("title ASC").Find(&pages).Error
	return pages, err
}

func (r *repository) UpdatePage(ctx context.Context, page *StaticPage) error {
	return r.db.WithContext(ctx).Save(page).Error
}

func (r *repository) DeletePage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&StaticPage{}, "id = ?", id).Error
}
