package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/auth"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/application/dto"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain"
	"github.com/jmcstoltze/aplicacion-pos-on-render/internal/domain/entity"
	pkgjwt "github.com/jmcstoltze/aplicacion-pos-on-render/pkg/jwt"
	"github.com/jmcstoltze/aplicacion-pos-on-render/pkg/logger"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "pos-backoffice-test"
	testPassword = "clave-segura-123"
)

// fakeUserRepo sólo implementa lo que Login necesita; el resto no se usa.
type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return nil, nil }

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) List(role string, onlyActive bool) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { return nil }

func newLoginFixtures(t *testing.T, active bool) *auth.UseCase {
	t.Helper()
	// MinCost para que la suite no pague el costo real de bcrypt.
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"jperez": {
			ID:           "00000000-0000-0000-0000-000000000001",
			Username:     "jperez",
			Email:        "jperez@example.com",
			PasswordHash: string(hash),
			Role:         entity.RoleJefeLocal,
			Active:       active,
		},
	}}
	cfg := auth.Config{Secret: testSecret, Issuer: testIssuer, ExpMinutes: 60}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return auth.NewUseCase(repo, cfg, log)
}

func TestLogin_EmiteTokenConRol(t *testing.T) {
	uc := newLoginFixtures(t, true)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "jperez", resp.User.Username)
	assert.Equal(t, entity.RoleJefeLocal, resp.User.Role)

	// El token emitido lleva la identidad completa en los claims.
	userID, username, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, "jperez", username)
	assert.Equal(t, entity.RoleJefeLocal, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc := newLoginFixtures(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := newLoginFixtures(t, true)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: "fantasma", Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Usuario inactivo y password incorrecta devuelven el mismo error: el
// mensaje no filtra cuál condición falló.
func TestLogin_UsuarioInactivoMismoError(t *testing.T) {
	activeUC := newLoginFixtures(t, true)
	inactiveUC := newLoginFixtures(t, false)

	_, errInactive := inactiveUC.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: testPassword})
	require.ErrorIs(t, errInactive, domain.ErrUnauthorized)

	_, errBadPass := activeUC.Login(context.Background(), dto.LoginRequest{Username: "jperez", Password: "otra-clave"})
	require.ErrorIs(t, errBadPass, domain.ErrUnauthorized)

	assert.Equal(t, errBadPass.Error(), errInactive.Error())
}
