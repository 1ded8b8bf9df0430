package usecase

import (
	"music-library/internal/entity"
	"music-library/internal/repo/persistent"
	"music-library/pkg/jwt"
	"music-library/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase interface {
	Register(username, password, email, phoneNumber, role string) (*entity.User, error)
	Login(username, password string) (*entity.User, string, error)
	Profile(userID string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	logger     *logger.Logger
}

func NewAuthUseCase(userRepo persistent.UserRepository, jwtService *jwt.Service, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user after three ordered uniqueness checks, each with
// its own message. The password is bcrypt-hashed before storage.
func (uc *authUseCase) Register(username, password, email, phoneNumber, role string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, Invalid("Username already exists")
	}
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, Invalid("Email already in use")
	}
	if _, err := uc.userRepo.GetByPhoneNumber(phoneNumber); err == nil {
		return nil, Invalid("Phone number already in use")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, Internal("Server error")
	}

	userRole := entity.RoleUser
	if role == string(entity.RoleAdmin) {
		userRole = entity.RoleAdmin
	}

	user := &entity.User{
		Username:    username,
		Email:       email,
		PhoneNumber: phoneNumber,
		Password:    string(hashedPassword),
		Role:        userRole,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user: %v", err)
		return nil, Internal("Server error")
	}

	user.Password = ""
	return user, nil
}

// Login verifies username and password and issues a 30-day credential
// binding the user id and role. Wrong credentials are indistinguishable.
func (uc *authUseCase) Login(username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err != nil {
		return nil, "", Unauthorized("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", Unauthorized("Invalid credentials")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", Internal("Server error")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Profile(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, NotFound("User not found")
	}
	user.Password = ""
	return user, nil
}
