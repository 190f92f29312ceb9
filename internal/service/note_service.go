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

type INoteService interface {
	GetAll(ctx context.Context, userId uuid.UUID, includeDeleted bool) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	DeletePermanently(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.NoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewNoteService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *noteService) GetAll(ctx context.Context, userId uuid.UUID, includeDeleted bool) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
	}
	if !includeDeleted {
		specs = append(specs, specification.ActiveOnly{})
	}
	specs = append(specs, specification.OrderBy{Field: "updated_at", Desc: true})

	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, toNoteResponse(note))
	}
	return responses, nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if req.FolderId != nil {
		if err := s.checkFolderOwned(ctx, uow, userId, *req.FolderId); err != nil {
			return nil, err
		}
	}

	note := &entity.Note{
		Id:         uuid.New(),
		Title:      req.Title,
		Content:    req.Content,
		AudioURL:   req.AudioURL,
		HasAudio:   req.HasAudio,
		Tags:       req.Tags,
		FolderId:   req.FolderId,
		UserId:     userId,
		IsFavorite: req.IsFavorite,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "note.created",
		ResourceType: "note",
		ResourceId:   note.Id,
		Detail:       note.Title,
	})

	return toNoteResponse(note), nil
}

func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		note.Title = *req.Title
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.AudioURL != nil {
		note.AudioURL = req.AudioURL
	}
	if req.HasAudio != nil {
		note.HasAudio = *req.HasAudio
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}
	if req.IsFavorite != nil {
		note.IsFavorite = *req.IsFavorite
	}
	// Even an empty patch refreshes updated_at; the edit happened.
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, mapNoteWriteErr(err)
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "note.updated",
		ResourceType: "note",
		ResourceId:   note.Id,
		Detail:       note.Title,
	})

	return toNoteResponse(note), nil
}

// Trash flips a note into the reversible deleted state. Trashing an
// already trashed note succeeds and refreshes updated_at again.
func (s *noteService) Trash(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.setDeleted(ctx, userId, id, true, "note.trashed")
}

func (s *noteService) Restore(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	return s.setDeleted(ctx, userId, id, false, "note.restored")
}

func (s *noteService) setDeleted(ctx context.Context, userId uuid.UUID, id uuid.UUID, deleted bool, action string) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}

	note.IsDeleted = deleted
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, mapNoteWriteErr(err)
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       action,
		ResourceType: "note",
		ResourceId:   note.Id,
		Detail:       note.Title,
	})

	return toNoteResponse(note), nil
}

// DeletePermanently removes the row regardless of trash state. There is
// no undo past this point.
func (s *noteService) DeletePermanently(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "note.deleted",
		ResourceType: "note",
		ResourceId:   note.Id,
		Detail:       note.Title,
	})

	return nil
}

// Move reassigns a note to a folder, or unfiles it when FolderId is
// nil. The target folder must exist and belong to the same user.
func (s *noteService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findOwnedNote(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	if req.FolderId != nil {
		if err := s.checkFolderOwned(ctx, uow, userId, *req.FolderId); err != nil {
			return nil, err
		}
	}

	note.FolderId = req.FolderId
	note.UpdatedAt = time.Now()

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, mapNoteWriteErr(err)
	}

	publishActivity(ctx, s.publisherService, dto.ActivityMessage{
		UserId:       userId,
		Action:       "note.moved",
		ResourceType: "note",
		ResourceId:   note.Id,
		Detail:       note.Title,
	})

	return toNoteResponse(note), nil
}

// mapNoteWriteErr turns a lost write race into the same 404 the caller
// would have seen had the permanent delete landed first.
func mapNoteWriteErr(err error) error {
	if errors.Is(err, contract.ErrNotFound) {
		return serverutils.NewNotFound("note not found")
	}
	return err
}

func (s *noteService) findOwnedNote(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, serverutils.NewNotFound("note not found")
	}
	return note, nil
}

func (s *noteService) checkFolderOwned(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, folderId uuid.UUID) error {
	folder, err := uow.FolderRepository().FindOne(ctx,
		specification.ByID{ID: folderId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if folder == nil {
		return serverutils.NewNotFound("folder not found")
	}
	return nil
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return &dto.NoteResponse{
		Id:         note.Id,
		Title:      note.Title,
		Content:    note.Content,
		AudioURL:   note.AudioURL,
		HasAudio:   note.HasAudio,
		Tags:       tags,
		FolderId:   note.FolderId,
		IsFavorite: note.IsFavorite,
		IsDeleted:  note.IsDeleted,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}
