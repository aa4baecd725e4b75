package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

func demoUser() *entity.User {
	return &entity.User{
		ID:    "00000000-0000-0000-0000-000000000001",
		Email: "admin@stockms.com",
		Name:  "Admin User",
		Role:  entity.RoleAdmin,
	}
}

func TestInitial_EsAnonimo(t *testing.T) {
	s := session.Initial()

	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Error)
	assert.Equal(t, session.StatusAnonymous, s.Status())
}

func TestReduce_LoginStart_ActivaCargaYLimpiaError(t *testing.T) {
	s := session.Initial()
	s.Error = "credenciales inválidas"

	s = session.Reduce(s, session.LoginStart{})

	assert.True(t, s.IsLoading)
	assert.Empty(t, s.Error, "LoginStart debe limpiar el error previo")
	assert.False(t, s.IsAuthenticated)
	assert.Equal(t, session.StatusAuthenticating, s.Status())
}

func TestReduce_LoginSuccess_Autentica(t *testing.T) {
	u := demoUser()
	s := session.Reduce(session.Initial(), session.LoginStart{})

	s = session.Reduce(s, session.LoginSuccess{User: u})

	assert.True(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Equal(t, u, s.User)
	assert.Empty(t, s.Error)
	assert.Equal(t, session.StatusAuthenticated, s.Status())
}

func TestReduce_LoginFailure_VuelveAnonimoConError(t *testing.T) {
	s := session.Reduce(session.Initial(), session.LoginStart{})

	s = session.Reduce(s, session.LoginFailure{Message: "email o contraseña inválidos"})

	assert.False(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Nil(t, s.User)
	assert.Equal(t, "email o contraseña inválidos", s.Error)
	assert.Equal(t, session.StatusAnonymous, s.Status())
}

func TestReduce_Logout_LimpiaUsuarioYError(t *testing.T) {
	s := session.Reduce(session.Initial(), session.LoginSuccess{User: demoUser()})

	s = session.Reduce(s, session.Logout{})

	assert.False(t, s.IsAuthenticated)
	assert.Nil(t, s.User)
	assert.Empty(t, s.Error)
	assert.Equal(t, session.StatusAnonymous, s.Status())
}

func TestReduce_UpdateProfile_SoloReemplazaUsuario(t *testing.T) {
	s := session.Reduce(session.Initial(), session.LoginSuccess{User: demoUser()})

	updated := demoUser()
	updated.Name = "Admin Renombrado"
	s = session.Reduce(s, session.UpdateProfile{User: updated})

	assert.True(t, s.IsAuthenticated, "UpdateProfile no debe tocar la autenticación")
	assert.Equal(t, "Admin Renombrado", s.User.Name)
}

func TestReduce_ClearError_SoloLimpiaError(t *testing.T) {
	s := session.Reduce(session.Initial(), session.LoginFailure{Message: "algo falló"})

	s = session.Reduce(s, session.ClearError{})

	assert.Empty(t, s.Error)
	assert.False(t, s.IsAuthenticated)
}

// El reducer es puro: aplicar una acción no debe mutar el estado de entrada.
func TestReduce_NoMutaElEstadoDeEntrada(t *testing.T) {
	original := session.Initial()
	original.Error = "previo"

	_ = session.Reduce(original, session.LoginStart{})

	assert.Equal(t, "previo", original.Error, "el estado de entrada no debe mutarse")
	assert.False(t, original.IsLoading)
}

// Invariante: User presente ⟺ IsAuthenticated, para toda secuencia de acciones.
func TestReduce_InvarianteUserPresenteSiiAutenticado(t *testing.T) {
	actions := []session.Action{
		session.LoginStart{},
		session.LoginFailure{Message: "x"},
		session.LoginStart{},
		session.LoginSuccess{User: demoUser()},
		session.ClearError{},
		session.UpdateProfile{User: demoUser()},
		session.Logout{},
		session.LoginStart{},
		session.LoginSuccess{User: demoUser()},
	}

	s := session.Initial()
	for i, a := range actions {
		s = session.Reduce(s, a)
		assert.Equal(t, s.IsAuthenticated, s.User != nil,
			"tras la acción %d (%T): User presente ⟺ IsAuthenticated", i, a)
	}
}

func TestReduce_AccionNilDevuelveEstadoSinCambios(t *testing.T) {
	s := session.Reduce(session.Initial(), session.LoginSuccess{User: demoUser()})

	out := session.Reduce(s, nil)

	assert.Equal(t, s, out)
}
