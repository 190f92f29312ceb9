package service

import (
	"context"

	"voicepad-be/internal/dto"
	"voicepad-be/internal/pkg/serverutils"
	"voicepad-be/internal/repository/specification"
	"voicepad-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NewNotFound("user not found")
	}

	return &dto.UserProfileResponse{
		Id:        user.Id,
		FullName:  user.FullName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, nil
}
