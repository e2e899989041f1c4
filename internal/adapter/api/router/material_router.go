package router

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/adapter/api/handler"
	"tutorconnect/internal/adapter/api/middleware"
)

func SetupMaterialRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	materialHandler := handler.GetMaterialHandler()

	materials := e.Group("/v1/materials")
	materials.Use(authMiddleware.Authenticate)
	materials.POST("/upload", materialHandler.UploadMaterial)
	materials.GET("", materialHandler.ListMaterials)
	materials.GET("/:id", materialHandler.GetMaterial)
	materials.GET("/:id/download", materialHandler.GetDownloadURL)
	materials.DELETE("/:id", materialHandler.DeleteMaterial)
}
