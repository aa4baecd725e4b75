// Package session modela el estado de sesión del cliente como una máquina de
// estados reducida por acciones discretas:
//
//	Anonymous ──LoginStart──► Authenticating ──LoginSuccess──► Authenticated
//	    ▲                           │                               │
//	    └────────LoginFailure───────┘◄────────────Logout────────────┘
//
// El reducer es una función pura; toda la E/S (persistencia, notificaciones)
// vive en el caso de uso de auth y en las implementaciones de Store.
package session

import (
	"github.com/jhoicas/stockms-api/internal/domain/entity"
)

// Estados de la máquina a nivel de sesión.
const (
	StatusAnonymous      = "anonymous"
	StatusAuthenticating = "authenticating"
	StatusAuthenticated  = "authenticated"
)

// State snapshot del estado de sesión. User presente ⟺ IsAuthenticated.
type State struct {
	User            *entity.User `json:"user,omitempty"`
	IsAuthenticated bool         `json:"is_authenticated"`
	IsLoading       bool         `json:"is_loading"`
	Error           string       `json:"error,omitempty"`
}

// Initial estado de arranque: anónimo, sin error, sin carga en curso.
func Initial() State {
	return State{}
}

// Status posición en la máquina de estados.
func (s State) Status() string {
	switch {
	case s.IsAuthenticated:
		return StatusAuthenticated
	case s.IsLoading:
		return StatusAuthenticating
	default:
		return StatusAnonymous
	}
}

// Action acción del reducer. Tipo suma sellado: solo las acciones de este paquete.
type Action interface {
	isAction()
}

// LoginStart inicia un login/registro: activa IsLoading y limpia Error.
type LoginStart struct{}

// LoginSuccess autentica con el usuario dado.
type LoginSuccess struct {
	User *entity.User
}

// LoginFailure vuelve a anónimo con el mensaje de error dado.
type LoginFailure struct {
	Message string
}

// Logout limpia usuario y error; no toca IsLoading.
type Logout struct{}

// UpdateProfile reemplaza únicamente el usuario.
type UpdateProfile struct {
	User *entity.User
}

// ClearError limpia únicamente el error.
type ClearError struct{}

func (LoginStart) isAction()    {}
func (LoginSuccess) isAction()  {}
func (LoginFailure) isAction()  {}
func (Logout) isAction()        {}
func (UpdateProfile) isAction() {}
func (ClearError) isAction()    {}

// Reduce aplica una acción sobre el estado y devuelve el nuevo estado.
// Función pura y total: una acción desconocida (o nil) devuelve el estado sin cambios.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case LoginStart:
		state.IsLoading = true
		state.Error = ""
		return state
	case LoginSuccess:
		state.IsLoading = false
		state.IsAuthenticated = true
		state.User = a.User
		state.Error = ""
		return state
	case LoginFailure:
		state.IsLoading = false
		state.IsAuthenticated = false
		state.User = nil
		state.Error = a.Message
		return state
	case Logout:
		state.IsAuthenticated = false
		state.User = nil
		state.Error = ""
		return state
	case UpdateProfile:
		state.User = a.User
		return state
	case ClearError:
		state.Error = ""
		return state
	default:
		return state
	}
}
