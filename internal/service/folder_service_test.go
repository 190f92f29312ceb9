package service

import (
	"context"
	"testing"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFolderTestServices() (IFolderService, INoteService) {
	factory := memory.NewRepositoryFactory()
	publisher := nopPublisher{}
	return NewFolderService(factory, publisher), NewNoteService(factory, publisher)
}

func TestCreateFolderWithColor(t *testing.T) {
	svc, _ := newFolderTestServices()
	ctx := context.Background()
	userId := uuid.New()

	folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{
		Name:  "Ideas",
		Color: strPtr("#FF8800"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ideas", folder.Name)
	require.NotNil(t, folder.Color)
	assert.Equal(t, "#FF8800", *folder.Color)
	assert.Equal(t, 0, folder.NoteCount)
}

func TestFolderNoteCountExcludesTrashed(t *testing.T) {
	svc, noteSvc := newFolderTestServices()
	ctx := context.Background()
	userId := uuid.New()

	folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Work"})
	require.NoError(t, err)

	_, err = noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Kept", FolderId: &folder.Id})
	require.NoError(t, err)
	trashed, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Trashed", FolderId: &folder.Id})
	require.NoError(t, err)
	_, err = noteSvc.Trash(ctx, userId, trashed.Id)
	require.NoError(t, err)

	_, err = svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Empty"})
	require.NoError(t, err)

	folders, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, folders, 2)
	assert.Equal(t, "Work", folders[0].Name)
	assert.Equal(t, 1, folders[0].NoteCount)
	assert.Equal(t, "Empty", folders[1].Name)
	assert.Equal(t, 0, folders[1].NoteCount)
}

func TestUpdateFolderPartial(t *testing.T) {
	svc, _ := newFolderTestServices()
	ctx := context.Background()
	userId := uuid.New()

	folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{
		Name:  "Old name",
		Color: strPtr("#111111"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, userId, &dto.UpdateFolderRequest{
		Id:   folder.Id,
		Name: strPtr("New name"),
	})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	require.NotNil(t, updated.Color)
	assert.Equal(t, "#111111", *updated.Color)
}

func TestUpdateFolderLosingRaceWithDelete(t *testing.T) {
	factory := memory.NewRepositoryFactory()
	svc := NewFolderService(factory, nopPublisher{})
	ctx := context.Background()
	userId := uuid.New()

	folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Doomed"})
	require.NoError(t, err)

	racing := NewFolderService(&deleteAfterReadFactory{inner: factory}, nopPublisher{})
	_, err = racing.Update(ctx, userId, &dto.UpdateFolderRequest{Id: folder.Id, Name: strPtr("Revived")})
	assertNotFound(t, err)

	folders, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, folders)
}

func TestDeleteFolderUnlinksNotes(t *testing.T) {
	svc, noteSvc := newFolderTestServices()
	ctx := context.Background()
	userId := uuid.New()

	folder, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: "Doomed"})
	require.NoError(t, err)
	note, err := noteSvc.Create(ctx, userId, &dto.CreateNoteRequest{Title: "Survivor", FolderId: &folder.Id})
	require.NoError(t, err)

	err = svc.Delete(ctx, userId, folder.Id)
	require.NoError(t, err)

	folders, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, folders)

	// The note survives, unfiled, with its edit time untouched.
	shown, err := noteSvc.Show(ctx, userId, note.Id)
	require.NoError(t, err)
	assert.Nil(t, shown.FolderId)
	assert.Equal(t, note.UpdatedAt, shown.UpdatedAt)
}

func TestDeleteForeignFolderNotFound(t *testing.T) {
	svc, _ := newFolderTestServices()
	ctx := context.Background()
	owner := uuid.New()
	intruder := uuid.New()

	folder, err := svc.Create(ctx, owner, &dto.CreateFolderRequest{Name: "Private"})
	require.NoError(t, err)

	err = svc.Delete(ctx, intruder, folder.Id)
	assertNotFound(t, err)

	folders, err := svc.GetAll(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, folders, 1)
}

func TestFoldersOrderedByCreation(t *testing.T) {
	svc, _ := newFolderTestServices()
	ctx := context.Background()
	userId := uuid.New()

	for _, name := range []string{"alpha", "beta", "gamma"} {
		_, err := svc.Create(ctx, userId, &dto.CreateFolderRequest{Name: name})
		require.NoError(t, err)
	}

	folders, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	require.Len(t, folders, 3)
	assert.Equal(t, "alpha", folders[0].Name)
	assert.Equal(t, "gamma", folders[2].Name)
}
