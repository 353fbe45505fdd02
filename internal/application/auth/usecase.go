// Package auth implementa registro y login de usuarios con bcrypt y JWT.
package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bwcsoft/zapateria-api/internal/application/dto"
	"github.com/bwcsoft/zapateria-api/internal/domain"
	"github.com/bwcsoft/zapateria-api/internal/domain/entity"
	"github.com/bwcsoft/zapateria-api/internal/domain/repository"
	"github.com/bwcsoft/zapateria-api/pkg/jwt"
)

// UseCase registra usuarios y emite tokens de sesión.
type UseCase struct {
	userRepo   repository.UserRepository
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(userRepo repository.UserRepository, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		userRepo:   userRepo,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		expMinutes: expMinutes,
	}
}

// Register crea un usuario nuevo. El rol por defecto es VENDEDOR y el
// password se guarda solo como hash bcrypt.
func (uc *UseCase) Register(in *dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	switch role {
	case entity.RoleAdministrador, entity.RoleVendedor, entity.RoleAlmacenista:
	default:
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		BranchIDs:    in.BranchIDs,
		Status:       "active",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login valida credenciales y devuelve un JWT firmado junto al usuario.
// Cualquier credencial incorrecta responde ErrUnauthorized sin distinguir
// entre usuario inexistente y password inválido.
func (uc *UseCase) Login(in *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Status != "active" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Role, uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// GetByID obtiene un usuario por ID.
func (uc *UseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista usuarios paginados.
func (uc *UseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		BranchIDs: u.BranchIDs,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
