// FILE: internal/service/user_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/atlanteavila/trashpanda-sub000/internal/dto"
	"github.com/atlanteavila/trashpanda-sub000/internal/entity"
	"github.com/atlanteavila/trashpanda-sub000/internal/pkg/serverutils"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/specification"
	"github.com/atlanteavila/trashpanda-sub000/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)

	ListAddresses(ctx context.Context, userId uuid.UUID) ([]dto.AddressResponse, error)
	CreateAddress(ctx context.Context, userId uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error)
	UpdateAddress(ctx context.Context, userId, addressId uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error)
	DeleteAddress(ctx context.Context, userId, addressId uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	allowlist  *serverutils.AdminAllowlist
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, allowlist *serverutils.AdminAllowlist) IUserService {
	return &userService{uowFactory: uowFactory, allowlist: allowlist}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	return &dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsAdmin:  s.allowlist.IsAdmin(user.Email),
	}, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, serverutils.NotFound("User not found")
	}

	if req.FullName != nil {
		user.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Phone != nil {
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.UserDTO{
		Id:       user.Id,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsAdmin:  s.allowlist.IsAdmin(user.Email),
	}, nil
}

func (s *userService) ListAddresses(ctx context.Context, userId uuid.UUID) ([]dto.AddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	addresses, err := uow.AddressRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		responses = append(responses, toAddressResponse(a))
	}
	return responses, nil
}

func (s *userService) CreateAddress(ctx context.Context, userId uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	address := &entity.Address{
		Id:         uuid.New(),
		UserId:     userId,
		Label:      strings.TrimSpace(req.Label),
		Street:     strings.TrimSpace(req.Street),
		City:       strings.TrimSpace(req.City),
		State:      strings.ToUpper(strings.TrimSpace(req.State)),
		PostalCode: strings.TrimSpace(req.PostalCode),
		IsDefault:  req.IsDefault,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Only one address per user may be the default.
	if address.IsDefault {
		if err := uow.AddressRepository().ClearDefaultForUser(ctx, userId); err != nil {
			return nil, err
		}
	}

	if err := uow.AddressRepository().Create(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	resp := toAddressResponse(address)
	return &resp, nil
}

func (s *userService) UpdateAddress(ctx context.Context, userId, addressId uuid.UUID, req *dto.AddressRequest) (*dto.AddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: addressId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, serverutils.NotFound("Address not found")
	}

	address.Label = strings.TrimSpace(req.Label)
	address.Street = strings.TrimSpace(req.Street)
	address.City = strings.TrimSpace(req.City)
	address.State = strings.ToUpper(strings.TrimSpace(req.State))
	address.PostalCode = strings.TrimSpace(req.PostalCode)
	address.UpdatedAt = time.Now()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if req.IsDefault && !address.IsDefault {
		if err := uow.AddressRepository().ClearDefaultForUser(ctx, userId); err != nil {
			return nil, err
		}
	}
	address.IsDefault = req.IsDefault

	if err := uow.AddressRepository().Update(ctx, address); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	resp := toAddressResponse(address)
	return &resp, nil
}

func (s *userService) DeleteAddress(ctx context.Context, userId, addressId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.AddressRepository().FindOne(ctx,
		specification.ByID{ID: addressId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if address == nil {
		return serverutils.NotFound("Address not found")
	}

	return uow.AddressRepository().Delete(ctx, addressId)
}

func toAddressResponse(a *entity.Address) dto.AddressResponse {
	return dto.AddressResponse{
		Id:         a.Id,
		Label:      a.Label,
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		IsDefault:  a.IsDefault,
	}
}
