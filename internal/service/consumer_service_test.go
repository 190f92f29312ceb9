package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/contract"
	"voicepad-be/internal/repository/specification"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// downActivityFactory stands in for a store whose writes always fail.
type downActivityFactory struct {
	attempts *int
}

func (f downActivityFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return downActivityUow{attempts: f.attempts}
}

type downActivityUow struct {
	attempts *int
}

func (downActivityUow) Begin(ctx context.Context) error { return nil }
func (downActivityUow) Commit() error                   { return nil }
func (downActivityUow) Rollback() error                 { return nil }

func (downActivityUow) UserRepository() contract.UserRepository     { return nil }
func (downActivityUow) FolderRepository() contract.FolderRepository { return nil }
func (downActivityUow) NoteRepository() contract.NoteRepository     { return nil }

func (u downActivityUow) ActivityRepository() contract.ActivityRepository {
	return &downActivityRepo{attempts: u.attempts}
}

type downActivityRepo struct {
	attempts *int
}

func (r *downActivityRepo) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	*r.attempts++
	return errors.New("connection refused")
}

func (r *downActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityEntry, error) {
	return nil, nil
}

func (r *downActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

func TestConsumerDropsEntryWhenStoreIsDown(t *testing.T) {
	attempts := 0
	cs := &consumerService{uowFactory: downActivityFactory{attempts: &attempts}}

	payload, err := json.Marshal(dto.ActivityMessage{
		UserId:       uuid.New(),
		Action:       "note.created",
		ResourceType: "note",
		ResourceId:   uuid.New(),
	})
	require.NoError(t, err)
	msg := message.NewMessage(watermill.NewUUID(), payload)

	cs.processMessage(context.Background(), msg)

	assert.Equal(t, persistAttempts, attempts)
	select {
	case <-msg.Acked():
	default:
		t.Fatal("message left unacked; a dead store must not trigger redelivery")
	}
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	attempts := 0
	cs := &consumerService{uowFactory: downActivityFactory{attempts: &attempts}}

	msg := message.NewMessage(watermill.NewUUID(), []byte("not json"))
	cs.processMessage(context.Background(), msg)

	assert.Zero(t, attempts)
	select {
	case <-msg.Acked():
	default:
		t.Fatal("malformed message left unacked")
	}
}
