package service

import (
	"context"
	"errors"
	"time"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/entity"
	"voicepad-be/internal/pkg/serverutils"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/specification"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFolderService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FolderResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.FolderResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type folderService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewFolderService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) IFolderService {
	return &folderService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *folderService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folders, err := uow.FolderRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	counts, err := uow.NoteRepository().CountByFolder(ctx, userId)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.FolderResponse, 0, len(folders))
	for _, folder := range folders {
		responses = append(responses, toFolderResponse(folder, int(counts[folder.Id])))
	}

	return responses, nil
}

func (s *folderService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFolderRequest) (*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder := &entity.Folder{
		Id:        uuid.New(),
		Name:      req.Name,
		Color:     req.Color,
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := uow.FolderRepository().Create(ctx, folder); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "folder.created",
		ResourceType: "folder",
		ResourceId:   folder.Id,
		Detail:       folder.Name,
	})

	return toFolderResponse(folder, 0), nil
}

func (s *folderService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFolderRequest) (*dto.FolderResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, serverutils.NewNotFound("folder not found")
	}

	if req.Name != nil {
		folder.Name = *req.Name
	}
	if req.Color != nil {
		folder.Color = req.Color
	}
	folder.UpdatedAt = time.Now()

	if err := uow.FolderRepository().Update(ctx, folder); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return nil, serverutils.NewNotFound("folder not found")
		}
		return nil, err
	}

	count, err := uow.NoteRepository().Count(ctx,
		specification.OwnedBy{UserID: userId},
		specification.ByFolderID{FolderID: folder.Id},
		specification.ActiveOnly{},
	)
	if err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "folder.updated",
		ResourceType: "folder",
		ResourceId:   folder.Id,
		Detail:       folder.Name,
	})

	return toFolderResponse(folder, int(count)), nil
}

// Delete removes the folder and unlinks its notes in one transaction.
// Notes survive folder deletion; only their folder reference is
// cleared, and their updated_at is left untouched.
func (s *folderService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return serverutils.NewNotFound("folder not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteRepository().ClearFolderRefs(ctx, userId, id); err != nil {
		return err
	}
	if err := uow.FolderRepository().Delete(ctx, id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "folder.deleted",
		ResourceType: "folder",
		ResourceId:   id,
		Detail:       folder.Name,
	})

	return nil
}

func toFolderResponse(folder *entity.Folder, noteCount int) *dto.FolderResponse {
	return &dto.FolderResponse{
		Id:        folder.Id,
		Name:      folder.Name,
		Color:     folder.Color,
		NoteCount: noteCount,
		CreatedAt: folder.CreatedAt,
		UpdatedAt: folder.UpdatedAt,
	}
}
