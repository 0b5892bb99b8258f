package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockbit/stockbit-api/internal/application/auth"
	"github.com/stockbit/stockbit-api/internal/application/dto"
	"github.com/stockbit/stockbit-api/internal/domain"
	"github.com/stockbit/stockbit-api/internal/domain/entity"
	"github.com/stockbit/stockbit-api/pkg/jwt"
)

type fakeUserRepo struct {
	users       map[string]*entity.User
	updateCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.updateCalls++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

type fakeSettingsRepo struct {
	byAccount map[string]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byAccount: make(map[string]*entity.Settings)}
}

func (r *fakeSettingsRepo) GetByAccount(accountID string) (*entity.Settings, error) {
	s, ok := r.byAccount[accountID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	cp := *s
	r.byAccount[s.AccountID] = &cp
	return nil
}

var testJWT = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "stockbit-test"}

func newAuthFixture() (*auth.AuthUseCase, *fakeUserRepo, *fakeSettingsRepo) {
	users := newFakeUserRepo()
	settings := newFakeSettingsRepo()
	return auth.NewAuthUseCase(users, settings, testJWT), users, settings
}

func registro() dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:       "ada@example.com",
		Password:    "contraseña-segura",
		Name:        "Ada",
		CompanyName: "Tienda Ada",
	}
}

func TestRegister_CreaAdminYSiembraSettings(t *testing.T) {
	uc, users, settings := newAuthFixture()

	resp, err := uc.Register(registro())
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, resp.Role, "quien crea la cuenta es su admin")
	assert.Equal(t, "Tienda Ada", resp.CompanyName)

	stored, _ := users.GetByID(resp.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "contraseña-segura", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("contraseña-segura")))

	seeded, _ := settings.GetByAccount(resp.ID)
	require.NotNil(t, seeded, "el registro siembra los Settings de la cuenta")
	assert.Equal(t, "Tienda Ada", seeded.CompanyName)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(registro())
	require.NoError(t, err)

	_, err = uc.Register(registro())
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_GeneraTokenConCuentaYRol(t *testing.T) {
	uc, _, _ := newAuthFixture()
	created, err := uc.Register(registro())
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "contraseña-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, accountID, role, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, userID)
	assert.Equal(t, created.ID, accountID, "el id del usuario es a la vez el id de la cuenta")
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, _ := newAuthFixture()
	_, err := uc.Register(registro())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ada@example.com", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newAuthFixture()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_Parcial(t *testing.T) {
	uc, _, _ := newAuthFixture()
	created, err := uc.Register(registro())
	require.NoError(t, err)

	nuevo := "Ada Lovelace"
	resp, err := uc.UpdateProfile(created.ID, dto.UpdateProfileRequest{Name: &nuevo})
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", resp.Name)
	assert.Equal(t, "Tienda Ada", resp.CompanyName, "los campos no enviados quedan intactos")
}

func TestMarkOnboardingSeen_EscrituraUnica(t *testing.T) {
	uc, users, _ := newAuthFixture()
	created, err := uc.Register(registro())
	require.NoError(t, err)

	require.NoError(t, uc.MarkOnboardingSeen(created.ID))
	writesAfterFirst := users.updateCalls
	require.NoError(t, uc.MarkOnboardingSeen(created.ID))

	assert.Equal(t, writesAfterFirst, users.updateCalls, "la segunda llamada es no-op")
	profile, err := uc.GetProfile(created.ID)
	require.NoError(t, err)
	assert.True(t, profile.OnboardingSeen)
}
