package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/entity"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

const (
	persistAttempts = 3
	persistBackoff  = 100 * time.Millisecond
)

// consumerService drains the activity topic and persists entries off
// the request path. A failed write never fails the originating request.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal activity message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	entry := entity.ActivityEntry{
		Id:           uuid.New(),
		UserId:       payload.UserId,
		Action:       payload.Action,
		ResourceType: payload.ResourceType,
		ResourceId:   payload.ResourceId,
		Detail:       payload.Detail,
		CreatedAt:    time.Now(),
	}

	// Bounded retry, then drop. Nacking on a down database makes
	// gochannel redeliver immediately and the consumer spins hot; the
	// activity log is auxiliary, so losing an entry beats that.
	var persistErr error
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		if persistErr = uow.ActivityRepository().Create(ctx, &entry); persistErr == nil {
			msg.Ack()
			return
		}
		if attempt < persistAttempts {
			time.Sleep(persistBackoff)
		}
	}

	log.Printf("[ERROR] Dropping activity entry after %d attempts: %v", persistAttempts, persistErr)
	msg.Ack()
}
