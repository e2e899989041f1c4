package handler

import (
	"github.com/labstack/echo/v4"

	"tutorconnect/internal/usecase"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/response"
)

const maxMaterialSize = 10 * 1024 * 1024

var allowedMaterialTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
	"application/vnd.ms-powerpoint":                                             true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
}

type MaterialHandler struct {
	materialUseCase *usecase.MaterialUseCase
}

var materialHandler *MaterialHandler

func SetupMaterialHandler(materialUseCase *usecase.MaterialUseCase) {
	materialHandler = &MaterialHandler{
		materialUseCase: materialUseCase,
	}
}

func GetMaterialHandler() *MaterialHandler {
	return materialHandler
}

func (h *MaterialHandler) UploadMaterial(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	if fileHeader.Size > maxMaterialSize {
		return response.Error(c, errors.BadRequest("File exceeds the 10MB size limit", nil))
	}

	fileType := fileHeader.Header.Get("Content-Type")
	if !allowedMaterialTypes[fileType] {
		return response.Error(c, errors.BadRequest("Unsupported file type", nil))
	}

	title := c.FormValue("title")
	if title == "" {
		return response.Error(c, errors.BadRequest("Title is required", nil))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	userID := c.Get("uid").(string)

	material, err := h.materialUseCase.UploadMaterial(c.Request().Context(), userID, usecase.UploadMaterialInput{
		Title:       title,
		Subject:     c.FormValue("subject"),
		Description: c.FormValue("description"),
		FileName:    fileHeader.Filename,
		FileType:    fileType,
		FileSize:    fileHeader.Size,
		File:        src,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, material)
}

func (h *MaterialHandler) ListMaterials(c echo.Context) error {
	userID := c.Get("uid").(string)

	materials, err := h.materialUseCase.ListMaterials(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, materials)
}

func (h *MaterialHandler) GetMaterial(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	userID := c.Get("uid").(string)

	material, err := h.materialUseCase.GetMaterial(c.Request().Context(), userID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, material)
}

func (h *MaterialHandler) GetDownloadURL(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	userID := c.Get("uid").(string)

	url, err := h.materialUseCase.GetDownloadURL(c.Request().Context(), userID, id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"url": url})
}

func (h *MaterialHandler) DeleteMaterial(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return response.Error(c, errors.BadRequest("Material ID is required", nil))
	}

	userID := c.Get("uid").(string)

	if err := h.materialUseCase.DeleteMaterial(c.Request().Context(), userID, id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Material deleted"})
}
