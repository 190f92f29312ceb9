package memory

import (
	"context"
	"time"

	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository struct {
	store *Store
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}
	c := *u
	if u.PasswordHash != nil {
		v := *u.PasswordHash
		c.PasswordHash = &v
	}
	return &c
}

func userMatches(u *entity.User, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return u.Id == s.ID
	case specification.ByEmail:
		return u.Email == s.Email
	default:
		return true
	}
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	if user.Id == uuid.Nil {
		user.Id = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	r.store.users.Set(user.Id.String(), cloneUser(user), 0)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.store.users.Set(user.Id.String(), cloneUser(user), 0)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, item := range r.store.users.Items() {
		u := item.Object.(*entity.User)
		ok := true
		for _, spec := range specs {
			if !userMatches(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	for _, item := range r.store.users.Items() {
		u := item.Object.(*entity.User)
		ok := true
		for _, spec := range specs {
			if !userMatches(u, spec) {
				ok = false
				break
			}
		}
		if ok {
			count++
		}
	}
	return count, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	if x, found := r.store.users.Get(userId.String()); found {
		u := cloneUser(x.(*entity.User))
		u.PasswordHash = &hash
		u.UpdatedAt = time.Now()
		r.store.users.Set(userId.String(), u, 0)
	}
	return nil
}

func cloneResetToken(t *entity.PasswordResetToken) *entity.PasswordResetToken {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func resetTokenMatches(t *entity.PasswordResetToken, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return t.Id == s.ID
	case specification.ByToken:
		return t.Token == s.Token
	case specification.OwnedBy:
		return t.UserId == s.UserID
	default:
		return true
	}
}

func (r *UserRepository) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	if token.Id == uuid.Nil {
		token.Id = uuid.New()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now()
	}
	r.store.resetTokens.Set(token.Id.String(), cloneResetToken(token), 0)
	return nil
}

func (r *UserRepository) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	for _, item := range r.store.resetTokens.Items() {
		t := item.Object.(*entity.PasswordResetToken)
		ok := true
		for _, spec := range specs {
			if !resetTokenMatches(t, spec) {
				ok = false
				break
			}
		}
		if ok {
			return cloneResetToken(t), nil
		}
	}
	return nil, nil
}

func (r *UserRepository) MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error {
	if x, found := r.store.resetTokens.Get(id.String()); found {
		t := cloneResetToken(x.(*entity.PasswordResetToken))
		t.Used = true
		r.store.resetTokens.Set(id.String(), t, 0)
	}
	return nil
}
