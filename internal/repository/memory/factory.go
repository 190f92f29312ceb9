package memory

import (
	"context"

	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/unitofwork"
)

type RepositoryFactory struct {
	store *Store
}

func NewRepositoryFactory() unitofwork.RepositoryFactory {
	return &RepositoryFactory{
		store: NewStore(),
	}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork over the in-process store. Writes apply immediately;
// Begin/Commit/Rollback are accepted and do nothing. The memory driver
// is a resilience and testing affordance, not the durability path.
type UnitOfWork struct {
	store *Store
}

func (u *UnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *UnitOfWork) Commit() error                   { return nil }
func (u *UnitOfWork) Rollback() error                 { return nil }

func (u *UnitOfWork) UserRepository() contract.UserRepository {
	return &UserRepository{store: u.store}
}

func (u *UnitOfWork) FolderRepository() contract.FolderRepository {
	return &FolderRepository{store: u.store}
}

func (u *UnitOfWork) NoteRepository() contract.NoteRepository {
	return &NoteRepository{store: u.store}
}

func (u *UnitOfWork) ActivityRepository() contract.ActivityRepository {
	return &ActivityRepository{store: u.store}
}
