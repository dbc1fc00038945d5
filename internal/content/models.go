package content

import (
	"time"

	"github.com/google/uuid"
)

// NewsPost is an article shown on the landing page news feed
type NewsPost struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"unique;not null" json:"slug"`
	Summary     string     `json:"summary"`
	Body        string     `gorm:"type:text" json:"body"`
	CoverImage  string     `json:"cover_image"`
	Published   bool       `gorm:"default:false" json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Banner is a promotional slide on the home carousel
type Banner struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	LinkURL   string    `json:"link_url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	Active    bool      `gorm:"default:true" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StaticPage is an editable page (about us, terms, contact) served by slug
type StaticPage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	Body      string    `gorm:"type:text" json:"body"`
	Published bool      `gorm:"default:true" json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (NewsPost) TableName() string   { return "news_posts" }
func (Banner) TableName() string     { return "banners" }
func (StaticPage) TableName() string { return "static_pages" }

// Admin requests

type CreateNewsRequest struct {
	Title      string `json:"title" binding:"required,min=3,max=255"`
	Slug       string `json:"slug" binding:"required,min=3,max=255"`
	Summary    string `json:"summary"`
	Body       string `json:"body" binding:"required"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

type UpdateNewsRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=3,max=255"`
	Slug       *string `json:"slug" binding:"omitempty,min=3,max=255"`
	Summary    *string `json:"summary"`
	Body       *string `json:"body"`
	CoverImage *string `json:"cover_image"`
	Published  *bool   `json:"published"`
}

type CreateBannerRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"image_url" binding:"required,url"`
	LinkURL   string `json:"link_url" binding:"omitempty,url"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

type UpdateBannerRequest struct {
	Title     *string `json:"title"`
	ImageURL  *string `json:"image_url" binding:"omitempty,url"`
	LinkURL   *string `json:"link_url" binding:"omitempty,url"`
	SortOrder *int    `json:"sort_order"`
	Active    *bool   `json:"active"`
}

type CreatePageRequest struct {
	Title     string `json:"title" binding:"required,min=3,max=255"`
	Slug      string `json:"slug" binding:"required,min=2,max=255"`
	Body      string `json:"body" binding:"required"`
	Published *bool  `json:"published"`
}

type UpdatePageRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=3,max=255"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}
