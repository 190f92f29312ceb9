package service

import (
	"context"
	"encoding/json"
	"log"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/repository/specification"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const recentActivityLimit = 50

type IActivityService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityResponse, error)
}

type activityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewActivityService(uowFactory unitofwork.RepositoryFactory) IActivityService {
	return &activityService{
		uowFactory: uowFactory,
	}
}

func (s *activityService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ActivityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	entries, err := uow.ActivityRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: recentActivityLimit, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ActivityResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, &dto.ActivityResponse{
			Id:           entry.Id,
			Action:       entry.Action,
			ResourceType: entry.ResourceType,
			ResourceId:   entry.ResourceId,
			Detail:       entry.Detail,
			CreatedAt:    entry.CreatedAt,
		})
	}

	return responses, nil
}

// publishActivity fans an activity record out to the log topic. Logging
// is auxiliary so failures are warned about, never returned.
func publishActivity(ctx context.Context, publisher IPublisherService, msg dto.ActivityMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WARN] Failed to marshal activity message: %v", err)
		return
	}
	if err := publisher.Publish(ctx, payload); err != nil {
		log.Printf("[WARN] Failed to publish activity message: %v", err)
	}
}
