package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"coachbooking/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListNews handles GET /content/news (published only)
func (ctrl *Controller) ListNews(ctx *gin.Context) {
	posts, err := ctrl.service.ListNews(ctx.Request.Context(), false)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get news", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "News retrieved successfully", posts, nil)
}

// GetNews handles GET /content/news/:idOrSlug
func (ctrl *Controller) GetNews(ctx *gin.Context) {
	post, err := ctrl.service.GetNews(ctx.Request.Context(), ctx.Param("idOrSlug"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get news post", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "News post retrieved successfully", post, nil)
}

// ListBanners handles GET /content/banners (active only)
func (ctrl *Controller) ListBanners(ctx *gin.Context) {
	banners, err := ctrl.service.ListBanners(ctx.Request.Context(), false)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get banners", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Banners retrieved successfully", banners, nil)
}

// GetPage handles GET /content/pages/:slug
func (ctrl *Controller) GetPage(ctx *gin.Context) {
	page, err := ctrl.service.GetPageBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to get page", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Page retrieved successfully", page, nil)
}

// Admin handlers

func (ctrl *Controller) AdminListNews(ctx *gin.Context) {
	posts, err := ctrl.service.ListNews(ctx.Request.Context(), true)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get news", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "News retrieved successfully", posts, nil)
}

func (ctrl *Controller) CreateNews(ctx *gin.Context) {
	var req CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	post, err := ctrl.service.CreateNews(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create news post", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "News post created successfully", post, nil)
}

func (ctrl *Controller) UpdateNews(ctx *gin.Context) {
	var req UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	post, err := ctrl.service.UpdateNews(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update news post", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "News post updated successfully", post, nil)
}

func (ctrl *Controller) DeleteNews(ctx *gin.Context) {
	if err := ctrl.service.DeleteNews(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete news post", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "News post deleted successfully", nil, nil)
}

func (ctrl *Controller) AdminListBanners(ctx *gin.Context) {
	banners, err := ctrl.service.ListBanners(ctx.Request.Context(), true)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get banners", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Banners retrieved successfully", banners, nil)
}

func (ctrl *Controller) CreateBanner(ctx *gin.Context) {
	var req CreateBannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	banner, err := ctrl.service.CreateBanner(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create banner", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Banner created successfully", banner, nil)
}

func (ctrl *Controller) UpdateBanner(ctx *gin.Context) {
	var req UpdateBannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	banner, err := ctrl.service.UpdateBanner(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update banner", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Banner updated successfully", banner, nil)
}

func (ctrl *Controller) DeleteBanner(ctx *gin.Context) {
	if err := ctrl.service.DeleteBanner(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete banner", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Banner deleted successfully", nil, nil)
}

func (ctrl *Controller) ListPages(ctx *gin.Context) {
	pages, err := ctrl.service.ListPages(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get pages", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Pages retrieved successfully", pages, nil)
}

func (ctrl *Controller) CreatePage(ctx *gin.Context) {
	var req CreatePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	page, err := ctrl.service.CreatePage(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to create page", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusCreated, "Page created successfully", page, nil)
}

func (ctrl *Controller) UpdatePage(ctx *gin.Context) {
	var req UpdatePageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	page, err := ctrl.service.UpdatePage(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to update page", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Page updated successfully", page, nil)
}

func (ctrl *Controller) DeletePage(ctx *gin.Context) {
	if err := ctrl.service.DeletePage(ctx.Request.Context(), ctx.Param("id")); err != nil {
		response.RespondJSON(ctx, "error", statusFor(err), "Failed to delete page", nil, err.Error())
		return
	}
	response.RespondJSON(ctx, "success", http.StatusOK, "Page deleted successfully", nil, nil)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNewsNotFound), errors.Is(err, ErrBannerNotFound), errors.Is(err, ErrPageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
