package content

import (
	"github.com/gin-gonic/gin"

	"coachbooking/internal/shared/config"
	"coachbooking/internal/shared/middleware"
)

// SetupContentRoutes mounts public reads and the admin back-office for
// news, banners and static pages.
func SetupContentRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	public := rg.Group("/content")
	{
		public.GET("/news", controller.ListNews)
		public.GET("/news/:idOrSlug", controller.GetNews)
		public.GET("/banners", controller.ListBanners)
		public.GET("/pages/:slug", controller.GetPage)
	}

	admin := rg.Group("/admin/content")
	admin.Use(middleware.JWTAuth(cfg), middleware.RequireAdmin())
	{
		admin.GET("/news", controller.AdminListNews)
		admin.POST("/news", controller.CreateNews)
		admin.PUT("/news/:id", controller.UpdateNews)
		admin.DELETE("/news/:id", controller.DeleteNews)

		admin.GET("/banners", controller.AdminListBanners)
		admin.POST("/banners", controller.CreateBanner)
		admin.PUT("/banners/:id", controller.UpdateBanner)
		admin.DELETE("/banners/:id", controller.DeleteBanner)

		admin.GET("/pages", controller.ListPages)
		admin.POST("/pages", controller.CreatePage)
		admin.PUT("/pages/:id", controller.UpdatePage)
		admin.DELETE("/pages/:id", controller.DeletePage)
	}
}
