package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/infrastructure/memory"
)

const testSession = "sess-1"

func newManager() *session.Manager {
	return session.NewManager(memory.NewSessionStore())
}

func TestManager_Load_SesionInexistenteArrancaAnonima(t *testing.T) {
	m := newManager()

	state, err := m.Load(context.Background(), "no-existe")

	require.NoError(t, err)
	assert.Equal(t, session.Initial(), state)
}

func TestManager_BeginComplete_FlujoNormal(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	seq, state, err := m.Begin(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, state.IsLoading)

	state, err = m.Complete(ctx, testSession, seq, session.LoginSuccess{User: demoUser()})
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated)

	// El snapshot debe quedar persistido.
	loaded, err := m.Load(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, loaded.IsAuthenticated)
	assert.Equal(t, "admin@stockms.com", loaded.User.Email)
}

// Doble submit: la finalización de la primera operación llega después de que una
// segunda ya emitió secuencia nueva. La obsoleta se descarta con ErrStaleRequest
// y no pisa el resultado de la más reciente.
func TestManager_Complete_SecuenciaObsoleta_Descartada(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	seq1, _, err := m.Begin(ctx, testSession)
	require.NoError(t, err)
	seq2, _, err := m.Begin(ctx, testSession)
	require.NoError(t, err)
	require.Greater(t, seq2, seq1)

	// La segunda operación resuelve primero.
	_, err = m.Complete(ctx, testSession, seq2, session.LoginSuccess{User: demoUser()})
	require.NoError(t, err)

	// La primera llega tarde: debe descartarse.
	_, err = m.Complete(ctx, testSession, seq1, session.LoginFailure{Message: "tarde"})
	assert.ErrorIs(t, err, domain.ErrStaleRequest)

	// El estado ganador sigue intacto.
	state, err := m.Load(ctx, testSession)
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated, "la finalización obsoleta no debe pisar el login exitoso")
	assert.Empty(t, state.Error)
}

// Las secuencias son por sesión: una operación en otra sesión no invalida la actual.
func TestManager_Complete_SecuenciasIndependientesPorSesion(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	seqA, _, err := m.Begin(ctx, "sess-A")
	require.NoError(t, err)
	_, _, err = m.Begin(ctx, "sess-B")
	require.NoError(t, err)

	_, err = m.Complete(ctx, "sess-A", seqA, session.LoginSuccess{User: demoUser()})
	assert.NoError(t, err, "la secuencia de otra sesión no debe interferir")
}

func TestManager_Logout_EliminaElSnapshot(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	seq, _, err := m.Begin(ctx, testSession)
	require.NoError(t, err)
	_, err = m.Complete(ctx, testSession, seq, session.LoginSuccess{User: demoUser()})
	require.NoError(t, err)

	state, err := m.Logout(ctx, testSession)
	require.NoError(t, err)
	assert.False(t, state.IsAuthenticated)

	// Una recarga posterior arranca anónima.
	loaded, err := m.Load(ctx, testSession)
	require.NoError(t, err)
	assert.Equal(t, session.Initial(), loaded)
}

func TestManager_Dispatch_AplicaSinFencing(t *testing.T) {
	m := newManager()
	ctx := context.Background()

	seq, _, err := m.Begin(ctx, testSession)
	require.NoError(t, err)
	_, err = m.Complete(ctx, testSession, seq, session.LoginFailure{Message: "credenciales inválidas"})
	require.NoError(t, err)

	state, err := m.Dispatch(ctx, testSession, session.ClearError{})
	require.NoError(t, err)
	assert.Empty(t, state.Error)
}
