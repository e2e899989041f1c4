package usecase

import (
	"context"
	"io"

	"tutorconnect/internal/domain/entity"
	"tutorconnect/internal/domain/repository"
	"tutorconnect/internal/domain/service"
	"tutorconnect/pkg/errors"
	"tutorconnect/pkg/logger"
)

type MaterialUseCase struct {
	materialRepo repository.MaterialRepository
	fileStorage  service.FileStorageService
}

func NewMaterialUseCase(
	materialRepo repository.MaterialRepository,
	fileStorage service.FileStorageService,
) *MaterialUseCase {
	return &MaterialUseCase{
		materialRepo: materialRepo,
		fileStorage:  fileStorage,
	}
}

type UploadMaterialInput struct {
	Title       string
	Subject     string
	Description string
	FileName    string
	FileType    string
	FileSize    int64
	File        io.Reader
}

// UploadMaterial stores the file first and the metadata row second; a failed
// row insert removes the freshly uploaded object so the bucket never holds
// orphans.
func (uc *MaterialUseCase) UploadMaterial(ctx context.Context, tutorUserID string, input UploadMaterialInput) (*entity.Material, error) {
	result, err := uc.fileStorage.UploadFile(ctx, input.File, input.FileType, input.FileName, tutorUserID)
	if err != nil {
		return nil, errors.Internal("Failed to upload file to storage", err)
	}

	material := &entity.Material{
		TutorID:     tutorUserID,
		Title:       input.Title,
		Subject:     input.Subject,
		Description: input.Description,
		FileName:    input.FileName,
		ObjectName:  result.ObjectName,
		FileURL:     result.URL,
		FileSize:    input.FileSize,
		FileType:    input.FileType,
	}

	if err := uc.materialRepo.Create(ctx, material); err != nil {
		if cleanupErr := uc.fileStorage.DeleteFile(ctx, result.ObjectName); cleanupErr != nil {
			logger.Warn("Failed to clean up orphaned object %s: %v", result.ObjectName, cleanupErr)
		}
		return nil, err
	}

	return material, nil
}

func (uc *MaterialUseCase) ListMaterials(ctx context.Context, tutorUserID string) ([]*entity.Material, error) {
	return uc.materialRepo.ListByTutorID(ctx, tutorUserID)
}

// GetMaterial enforces ownership; another tutor's material is reported as
// missing, not forbidden.
func (uc *MaterialUseCase) GetMaterial(ctx context.Context, tutorUserID, id string) (*entity.Material, error) {
	material, err := uc.materialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material.TutorID != tutorUserID {
		return nil, errors.NotFound("Material", nil)
	}

	return material, nil
}

func (uc *MaterialUseCase) GetDownloadURL(ctx context.Context, tutorUserID, id string) (string, error) {
	material, err := uc.GetMaterial(ctx, tutorUserID, id)
	if err != nil {
		return "", err
	}

	url, err := uc.fileStorage.GenerateSignedURL(ctx, material.ObjectName)
	if err != nil {
		return "", errors.Internal("Failed to generate download link", err)
	}

	return url, nil
}

func (uc *MaterialUseCase) DeleteMaterial(ctx context.Context, tutorUserID, id string) error {
	material, err := uc.GetMaterial(ctx, tutorUserID, id)
	if err != nil {
		return err
	}

	// Storage deletion is best-effort; dropping the row is what removes the
	// material from the product.
	if err := uc.fileStorage.DeleteFile(ctx, material.ObjectName); err != nil {
		logger.Warn("Failed to delete object %s from storage: %v", material.ObjectName, err)
	}

	return uc.materialRepo.Delete(ctx, id)
}
