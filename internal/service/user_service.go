package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lyfjs/gomis-go-api/internal/dto"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
)

// ErrUserNotFound indicates the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail indicates another account already holds the email.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrInvalidCredentials indicates a failed authentication attempt. Unknown
// email and wrong password both map here so the two are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer struct {
	Secret string
	TTL    time.Duration
}

// Issue produces a signed HS256 token for the user.
func (t TokenIssuer) Issue(user models.User) (string, error) {
	if t.Secret == "" {
		return "", nil
	}

	ttl := t.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.Secret))
}

// UserService exposes staff account use cases.
type UserService interface {
	List(ctx context.Context) ([]dto.UserResponse, error)
	Get(ctx context.Context, id uint) (dto.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (dto.UserResponse, error)
	Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error)
	Update(ctx context.Context, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id uint) error
	Authenticate(ctx context.Context, payload dto.AuthenticateRequest) (dto.AuthenticateResponse, error)
}

type userService struct {
	repo      repository.UserRepository
	validator *validator.Validate
	tokens    TokenIssuer
	logger    zerolog.Logger
}

// NewUserService builds a new user service.
func NewUserService(repo repository.UserRepository, validate *validator.Validate, tokens TokenIssuer, logger zerolog.Logger) UserService {
	return &userService{
		repo:      repo,
		validator: validate,
		tokens:    tokens,
		logger:    logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewUserResponseSlice(users), nil
}

func (s *userService) Get(ctx context.Context, id uint) (dto.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}

		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (dto.UserResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}

		return dto.UserResponse{}, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *userService) Create(ctx context.Context, payload dto.UserCreateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	if _, err := s.repo.GetByEmail(ctx, payload.Email); err == nil {
		return dto.UserResponse{}, ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.UserResponse{}, err
	}

	role := payload.Role
	if role == "" {
		role = "ADMIN"
	}

	user := models.User{
		Email:          payload.Email,
		Password:       string(hashed),
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		MiddleName:     payload.MiddleName,
		Suffix:         payload.Suffix,
		Gender:         payload.Gender,
		Position:       payload.Position,
		WorkPosition:   payload.WorkPosition,
		Specialization: payload.Specialization,
		ContactNo:      payload.ContactNo,
		Role:           role,
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("email", user.Email).Msg("user created")

	return dto.NewUserResponse(user), nil
}

func (s *userService) Update(ctx context.Context, id uint, payload dto.UserUpdateRequest) (dto.UserResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.UserResponse{}, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, ErrUserNotFound
		}

		return dto.UserResponse{}, err
	}

	if payload.Email != nil && *payload.Email != user.Email {
		if _, err := s.repo.GetByEmail(ctx, *payload.Email); err == nil {
			return dto.UserResponse{}, ErrDuplicateEmail
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.UserResponse{}, err
		}
		user.Email = *payload.Email
	}
	if payload.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*payload.Password), bcrypt.DefaultCost)
		if err != nil {
			return dto.UserResponse{}, err
		}
		user.Password = string(hashed)
	}
	if payload.FirstName != nil {
		user.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		user.LastName = *payload.LastName
	}
	if payload.MiddleName != nil {
		user.MiddleName = *payload.MiddleName
	}
	if payload.Suffix != nil {
		user.Suffix = *payload.Suffix
	}
	if payload.Gender != nil {
		user.Gender = *payload.Gender
	}
	if payload.Position != nil {
		user.Position = *payload.Position
	}
	if payload.WorkPosition != nil {
		user.WorkPosition = *payload.WorkPosition
	}
	if payload.Specialization != nil {
		user.Specialization = *payload.Specialization
	}
	if payload.ContactNo != nil {
		user.ContactNo = *payload.ContactNo
	}
	if payload.Role != nil {
		user.Role = *payload.Role
	}

	if err := s.repo.Update(ctx, &user); err != nil {
		return dto.UserResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user updated")

	return dto.NewUserResponse(user), nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return nil
}

func (s *userService) Authenticate(ctx context.Context, payload dto.AuthenticateRequest) (dto.AuthenticateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AuthenticateResponse{}, err
	}

	user, err := s.repo.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthenticateResponse{}, ErrInvalidCredentials
		}

		return dto.AuthenticateResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return dto.AuthenticateResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return dto.AuthenticateResponse{}, err
	}

	s.logger.Info().Uint("user_id", user.ID).Msg("user authenticated")

	return dto.AuthenticateResponse{User: dto.NewUserResponse(user), Token: token}, nil
}
