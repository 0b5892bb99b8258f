package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/internal/domain/repository"
	"github.com/stockbit/stockbit-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	settingsRepo repository.SettingsRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, settingsRepo repository.SettingsRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, settingsRepo: settingsRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario nuevo: hashea el password con bcrypt, persiste y
// siembra la configuración por defecto de la cuenta. Devuelve
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		CompanyName:  in.CompanyName,
		// El registro crea la cuenta de negocio: quien la crea es su admin.
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	// La cuenta nace con su Settings por defecto; si falla se autocreará en
	// la primera lectura (SettingsUseCase.Get).
	settings := entity.DefaultSettings(user.ID)
	settings.CompanyName = in.CompanyName
	_ = uc.settingsRepo.Upsert(settings)

	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// GetProfile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateProfile actualiza nombre y/o razón social del usuario.
func (uc *AuthUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.CompanyName != nil {
		user.CompanyName = *in.CompanyName
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// MarkOnboardingSeen marca el flag de onboarding. Se escribe una sola vez:
// llamadas posteriores son no-op.
func (uc *AuthUseCase) MarkOnboardingSeen(userID string) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.OnboardingSeen {
		return nil
	}
	user.OnboardingSeen = true
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		CompanyName:    u.CompanyName,
		Role:           u.Role,
		OnboardingSeen: u.OnboardingSeen,
		CreatedAt:      u.CreatedAt,
	}
}
