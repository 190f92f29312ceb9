package service

import (
	"context"
	"testing"
	"time"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/entity"
	"voicepad-be/internal/pkg/serverutils"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/memory"
	"voicepad-be/internal/repository/specification"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deleteAfterReadFactory hands out units of work whose FindOne deletes
// the row it just returned, simulating a permanent delete landing
// between a service's ownership read and its write.
type deleteAfterReadFactory struct {
	inner unitofwork.RepositoryFactory
}

func (f *deleteAfterReadFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &deleteAfterReadUow{UnitOfWork: f.inner.NewUnitOfWork(ctx)}
}

type deleteAfterReadUow struct {
	unitofwork.UnitOfWork
}

func (u *deleteAfterReadUow) NoteRepository() contract.NoteRepository {
	return &deleteAfterReadNoteRepo{NoteRepository: u.UnitOfWork.NoteRepository()}
}

func (u *deleteAfterReadUow) FolderRepository() contract.FolderRepository {
	return &deleteAfterReadFolderRepo{FolderRepository: u.UnitOfWork.FolderRepository()}
}

type deleteAfterReadNoteRepo struct {
	contract.NoteRepository
}

func (r *deleteAfterReadNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	note, err := r.NoteRepository.FindOne(ctx, specs...)
	if err == nil && note != nil {
		if derr := r.NoteRepository.Delete(ctx, note.Id); derr != nil {
			return nil, derr
		}
	}
	return note, err
}

type deleteAfterReadFolderRepo struct {
	contract.FolderRepository
}

func (r *deleteAfterReadFolderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Folder, error) {
	folder, err := r.FolderRepository.FindOne(ctx, specs...)
	if err == nil && folder != nil {
		if derr := r.FolderRepository.Delete(ctx, folder.Id); derr != nil {
			return nil, derr
		}
	}
	return folder, err
}

// nopPublisher satisfies IPublisherService for tests where the
// activity stream is irrelevant.
type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error {
	return nil
}

func newNoteTestServices() (INoteService, IFolderService, unitofwork.RepositoryFactory) {
	factory := memory.NewRepositoryFactory()
	publisher := nopPublisher{}
	return NewNoteService(factory, publisher), NewFolderService(factory, publisher), factory
}

func strPtr(s string) *string { return &s }

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*serverutils.AppError)
	require.True(t, ok, "expected AppError, got %T", err)
	assert.Equal(t, fiber.StatusNotFound, appErr.Code)
}

func TestCreateAndShowNote(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:    "Standup notes",
		Content:  "Discussed release",
		Tags:     []string{"work", "meeting"},
		HasAudio: true,
		AudioURL: strPtr("/uploads/standup.webm"),
	})
	require.NoError(t, err)
	assert.False(t, created.IsDeleted)
	assert.Equal(t, []string{"work", "meeting"}, created.Tags)

	shown, err := svc.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Standup notes", shown.Title)
	assert.True(t, shown.HasAudio)
	require.NotNil(t, shown.AudioURL)
	assert.Equal(t, "/uploads/standup.webm", *shown.AudioURL)
}

func TestCreateNoteInForeignFolder(t *testing.T) {
	svc, folderSvc, _ := newNoteTestServices()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	folder, err := folderSvc.Create(ctx, owner, &dto.CreateFolderRequest{Name: "Private"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, intruder, &dto.CreateNoteRequest{
		Title:    "Sneaky",
		FolderId: &folder.Id,
	})
	assertNotFound(t, err)
}

func TestCrossUserAccessIsNotFound(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(ctx, owner, &dto.CreateNoteRequest{Title: "Mine"})
	require.NoError(t, err)

	_, err = svc.Show(ctx, intruder, created.Id)
	assertNotFound(t, err)

	_, err = svc.Update(ctx, intruder, &dto.UpdateNoteRequest{Id: created.Id, Title: strPtr("Stolen")})
	assertNotFound(t, err)

	_, err = svc.Trash(ctx, intruder, created.Id)
	assertNotFound(t, err)

	err = svc.DeletePermanently(ctx, intruder, created.Id)
	assertNotFound(t, err)

	// Still intact for the owner.
	shown, err := svc.Show(ctx, owner, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Mine", shown.Title)
}

func TestTrashAndRestore(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Draft"})
	require.NoError(t, err)

	trashed, err := svc.Trash(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.True(t, trashed.IsDeleted)

	// Trashing again is not an error.
	again, err := svc.Trash(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.True(t, again.IsDeleted)

	restored, err := svc.Restore(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)

	// Restoring an active note is also fine.
	restored, err = svc.Restore(ctx, userId, created.Id)
	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
}

func TestTrashedNotesHiddenFromDefaultList(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	active, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Active"})
	require.NoError(t, err)
	toTrash, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Old"})
	require.NoError(t, err)

	_, err = svc.Trash(ctx, userId, toTrash.Id)
	require.NoError(t, err)

	visible, err := svc.GetAll(ctx, userId, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, active.Id, visible[0].Id)

	all, err := svc.GetAll(ctx, userId, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListOrderedByLastEdit(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	first, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Second"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	// Editing the oldest note bumps it to the top.
	_, err = svc.Update(ctx, userId, &dto.UpdateNoteRequest{Id: first.Id, Content: strPtr("edited")})
	require.NoError(t, err)

	notes, err := svc.GetAll(ctx, userId, false)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, first.Id, notes[0].Id)
}

func TestEmptyUpdateStillRefreshesTimestamp(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Untouched"})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := svc.Update(ctx, userId, &dto.UpdateNoteRequest{Id: created.Id})
	require.NoError(t, err)
	assert.Equal(t, "Untouched", updated.Title)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestPartialUpdateKeepsOtherFields(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	created, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{
		Title:      "Groceries",
		Content:    "milk, eggs",
		Tags:       []string{"home"},
		IsFavorite: true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateNoteRequest{
		Id:    created.Id,
		Title: strPtr("Groceries v2"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries v2", updated.Title)
	assert.Equal(t, "milk, eggs", updated.Content)
	assert.Equal(t, []string{"home"}, updated.Tags)
	assert.True(t, updated.IsFavorite)
}

func TestMoveNote(t *testing.T) {
	svc, folderSvc, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	folder, err := folderSvc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)
	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Loose"})
	require.NoError(t, err)

	moved, err := svc.Move(ctx, userId, &dto.MoveNoteRequest{Id: note.Id, FolderId: &folder.Id})
	require.NoError(t, err)
	require.NotNil(t, moved.FolderId)
	assert.Equal(t, folder.Id, *moved.FolderId)

	// Moving with a nil folder unfiles the note.
	unfiled, err := svc.Move(ctx, userId, &dto.MoveNoteRequest{Id: note.Id, FolderId: nil})
	require.NoError(t, err)
	assert.Nil(t, unfiled.FolderId)
}

func TestMoveNoteToMissingFolder(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Stuck"})
	require.NoError(t, err)

	missing := uuid.New()
	_, err = svc.Move(ctx, userId, &dto.MoveNoteRequest{Id: note.Id, FolderId: &missing})
	assertNotFound(t, err)

	// Note unchanged after the failed move.
	shown, err := svc.Show(ctx, userId, note.Id)
	require.NoError(t, err)
	assert.Nil(t, shown.FolderId)
}

func TestUpdateLosingRaceWithPermanentDelete(t *testing.T) {
	svc, _, factory := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Doomed"})
	require.NoError(t, err)

	racing := NewNoteService(&deleteAfterReadFactory{inner: factory}, nopPublisher{})
	_, err = racing.Update(ctx, userId, &dto.UpdateNoteRequest{Id: note.Id, Title: strPtr("Back again")})
	assertNotFound(t, err)

	// Permanent deletion is terminal; the lost write must not recreate
	// the row.
	_, err = svc.Show(ctx, userId, note.Id)
	assertNotFound(t, err)
	all, err := svc.GetAll(ctx, userId, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTrashLosingRaceWithPermanentDelete(t *testing.T) {
	svc, _, factory := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Doomed"})
	require.NoError(t, err)

	racing := NewNoteService(&deleteAfterReadFactory{inner: factory}, nopPublisher{})
	_, err = racing.Trash(ctx, userId, note.Id)
	assertNotFound(t, err)

	all, err := svc.GetAll(ctx, userId, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeletePermanently(t *testing.T) {
	svc, _, _ := newNoteTestServices()
	ctx := context.Background()
	userId := uuid.New()

	note, err := svc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Gone soon"})
	require.NoError(t, err)

	// Works on active notes too, not just trashed ones.
	err = svc.DeletePermanently(ctx, userId, note.Id)
	require.NoError(t, err)

	_, err = svc.Show(ctx, userId, note.Id)
	assertNotFound(t, err)

	all, err := svc.GetAll(ctx, userId, true)
	require.NoError(t, err)
	assert.Empty(t, all)
}
