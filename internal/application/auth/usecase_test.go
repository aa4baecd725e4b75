package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockms-api/internal/application/auth"
	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/stockms-api/pkg/jwt"
)

const (
	testEmail    = "admin@stockms.com"
	testPassword = "password123"
	testSecret   = "test-secret-key-for-unit-tests"
)

// noopNotifier descarta las notificaciones; los tests no validan toasts.
type noopNotifier struct{}

func (noopNotifier) Success(string) {}
func (noopNotifier) Error(string)   {}

type fixture struct {
	uc        *auth.UseCase
	users     *memory.UserRepo
	blacklist *memory.Blacklist
	sessions  *session.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	users := memory.NewUserRepo()
	blacklist := memory.NewBlacklist()
	sessions := session.NewManager(memory.NewSessionStore())
	uc := auth.NewUseCase(users, sessions, blacklist, noopNotifier{}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "stockms-test",
	})
	return &fixture{uc: uc, users: users, blacklist: blacklist, sessions: sessions}
}

func (f *fixture) seedUser(t *testing.T, email, status string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         entity.RoleAdmin,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, f.users.Create(u))
	return u
}

func TestLogin_CredencialesValidas_DevuelveTokenYEstampaLastLogin(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedUser(t, testEmail, "active")
	require.True(t, seeded.LastLogin.IsZero())
	sessionID := uuid.NewString()

	resp, err := f.uc.Login(context.Background(), sessionID, dto.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, testEmail, resp.User.Email)
	require.NotNil(t, resp.User.LastLogin, "el login debe estampar LastLogin")

	// El token lleva los claims de la sesión.
	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)

	// LastLogin quedó persistido en el repositorio.
	stored, err := f.users.GetByID(seeded.ID)
	require.NoError(t, err)
	assert.False(t, stored.LastLogin.IsZero())

	// El snapshot de sesión quedó autenticado.
	state, err := f.sessions.Load(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
}

// Email desconocido y password incorrecto devuelven el MISMO error, sin filtrar
// cuál de los dos falló.
func TestLogin_EmailDesconocidoYPasswordIncorrecto_MismoError(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, testEmail, "active")
	ctx := context.Background()

	_, errUnknown := f.uc.Login(ctx, uuid.NewString(), dto.LoginRequest{
		Email:    "nadie@stockms.com",
		Password: testPassword,
	})
	_, errWrongPass := f.uc.Login(ctx, uuid.NewString(), dto.LoginRequest{
		Email:    testEmail,
		Password: "contraseña-incorrecta",
	})

	assert.ErrorIs(t, errUnknown, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error(),
		"ambos fallos deben producir el mismo mensaje")
}

func TestLogin_FallidoRegistraErrorEnSesion(t *testing.T) {
	f := newFixture(t)
	sessionID := uuid.NewString()

	_, err := f.uc.Login(context.Background(), sessionID, dto.LoginRequest{
		Email:    "nadie@stockms.com",
		Password: "x",
	})
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	state, err := f.sessions.Load(context.Background(), sessionID)
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)
	assert.Equal(t, domain.ErrInvalidCredentials.Error(), state.Error)
}

func TestLogin_UsuarioInactivo_Retorna403(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, testEmail, "inactive")

	_, err := f.uc.Login(context.Background(), uuid.NewString(), dto.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestRegister_CreaUsuarioYAutentica(t *testing.T) {
	f := newFixture(t)
	sessionID := uuid.NewString()

	before, err := f.users.Count()
	require.NoError(t, err)

	resp, err := f.uc.Register(context.Background(), sessionID, dto.RegisterRequest{
		Name:     "Nueva Cajera",
		Email:    "cajera@stockms.com",
		Password: "password123",
		Role:     entity.RoleCashier,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, entity.RoleCashier, resp.User.Role)

	after, err := f.users.Count()
	require.NoError(t, err)
	assert.Equal(t, before+1, after, "el registro exitoso agrega exactamente un usuario")

	// Registro = login implícito: el usuario no tiene que volver a autenticarse.
	state, err := f.sessions.Load(context.Background(), sessionID)
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)
}

func TestRegister_EmailDuplicado_NoCambiaElConteo(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, testEmail, "active")

	before, err := f.users.Count()
	require.NoError(t, err)

	_, err = f.uc.Register(context.Background(), uuid.NewString(), dto.RegisterRequest{
		Name:     "Impostor",
		Email:    testEmail,
		Password: "password123",
		Role:     entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	after, err := f.users.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after, "un registro duplicado no debe alterar el repositorio")
}

func TestLogout_EliminaSesionYVetaElToken(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, testEmail, "active")
	sessionID := uuid.NewString()
	ctx := context.Background()

	resp, err := f.uc.Login(ctx, sessionID, dto.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)

	err = f.uc.Logout(ctx, sessionID, claims.ID, claims.ExpiresAt.Time)
	require.NoError(t, err)

	// El JTI queda vetado hasta la expiración del token.
	revoked, err := f.blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked, "el token del logout debe quedar en la blacklist")

	// La sesión se hidrata anónima.
	sess, err := f.uc.CurrentSession(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, sess.IsAuthenticated)
	assert.Equal(t, session.StatusAnonymous, sess.Status)
}

func TestClearError_LimpiaElUltimoError(t *testing.T) {
	f := newFixture(t)
	sessionID := uuid.NewString()
	ctx := context.Background()

	_, err := f.uc.Login(ctx, sessionID, dto.LoginRequest{Email: "nadie@stockms.com", Password: "x"})
	require.Error(t, err)

	require.NoError(t, f.uc.ClearError(ctx, sessionID))

	sess, err := f.uc.CurrentSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, sess.Error)
}

func TestUpdateProfile_MezclaSoloCamposPresentes(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t, testEmail, "active")
	newName := "Admin Renombrado"

	resp, err := f.uc.UpdateProfile(context.Background(), uuid.NewString(), u.ID, dto.UpdateProfileRequest{
		Name: &newName,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, newName, resp.Name)
	assert.Equal(t, testEmail, resp.Email, "el email no enviado no debe cambiar")
}

func TestUpdateProfile_UsuarioInexistente_DevuelveNil(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.UpdateProfile(context.Background(), uuid.NewString(), uuid.NewString(), dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
