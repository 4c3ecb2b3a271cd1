package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mentora-labs/mentora-go-api/internal/dto"
	"github.com/mentora-labs/mentora-go-api/internal/models"
	"github.com/mentora-labs/mentora-go-api/internal/repository"
)

// UserService exposes profile management, class rosters, and class assignment.
type UserService interface {
	GetProfile(ctx context.Context, email string) (dto.UserResponse, error)
	UpdateProfile(ctx context.Context, req dto.ProfileUpdateRequest) (dto.UserResponse, error)
	AssignClass(ctx context.Context, req dto.AssignClassRequest) (dto.UserResponse, error)
	GetClassDetails(ctx context.Context, classID string) (dto.ClassDetailsResponse, error)
}

type userService struct {
	users     repository.UserRepository
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewUserService constructs the user service.
func NewUserService(users repository.UserRepository, validate *validator.Validate, logger zerolog.Logger) UserService {
	return &userService{
		users:     users,
		validate:  validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) GetProfile(ctx context.Context, email string) (dto.UserResponse, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	return userResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req dto.ProfileUpdateRequest) (dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	if req.Name != "" {
		user.Name = s.sanitizer.Sanitize(req.Name)
	}
	if req.Password != "" {
		hashed, hashErr := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return dto.UserResponse{}, hashErr
		}
		user.Password = string(hashed)
	}

	if err := s.users.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	return userResponse(user), nil
}

func (s *userService) AssignClass(ctx context.Context, req dto.AssignClassRequest) (dto.UserResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return dto.UserResponse{}, err
	}

	id, err := parseUserID(req.UserID)
	if err != nil {
		return dto.UserResponse{}, ErrInvalidUserID
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}
		return dto.UserResponse{}, err
	}

	user.ClassID = req.ClassID
	if err := s.users.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("class_id", req.ClassID).Msg("class assigned")

	return userResponse(user), nil
}

func (s *userService) GetClassDetails(ctx context.Context, classID string) (dto.ClassDetailsResponse, error) {
	// The class id doubles as its display name until class entities exist.
	response := dto.ClassDetailsResponse{
		ClassName: classID,
		Students:  []dto.ClassMember{},
	}

	professors, err := s.users.ListByClassAndRole(ctx, classID, models.RoleProfessor)
	if err != nil {
		return dto.ClassDetailsResponse{}, err
	}
	if len(professors) > 0 {
		response.Professor = &dto.ClassProfessor{
			Name:  professors[0].Name,
			Email: professors[0].Email,
		}
	}

	students, err := s.users.ListByClassAndRole(ctx, classID, models.RoleStudent)
	if err != nil {
		return dto.ClassDetailsResponse{}, err
	}
	for _, student := range students {
		response.Students = append(response.Students, dto.ClassMember{
			Name:   student.Name,
			Email:  student.Email,
			Status: student.StatusOrDefault("Active"),
		})
	}

	return response, nil
}
