package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockms-api/internal/application/dto"
	"github.com/jhoicas/stockms-api/internal/application/session"
	"github.com/jhoicas/stockms-api/internal/domain"
	"github.com/jhoicas/stockms-api/internal/domain/entity"
	"github.com/jhoicas/stockms-api/internal/domain/repository"
	"github.com/jhoicas/stockms-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase fachada de autenticación: login, registro, logout y perfil.
//
// Cada operación pasa por el session.Manager: despacha acciones del reducer y
// persiste el snapshot. El doble submit de login se resuelve por fencing: la
// finalización con secuencia obsoleta se descarta (domain.ErrStaleRequest).
type UseCase struct {
	userRepo  repository.UserRepository
	sessions  *session.Manager
	blacklist Blacklist
	notifier  Notifier
	jwtCfg    JWTConfig
}

// NewUseCase construye la fachada de auth.
func NewUseCase(userRepo repository.UserRepository, sessions *session.Manager, blacklist Blacklist, notifier Notifier, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, sessions: sessions, blacklist: blacklist, notifier: notifier, jwtCfg: jwtCfg}
}

// Login verifica email/password contra el repositorio, estampa LastLogin,
// persiste el snapshot de sesión y genera el JWT.
// Devuelve domain.ErrInvalidCredentials tanto para email desconocido como para
// password incorrecto (mismo mensaje, sin filtrar cuál falló).
func (uc *UseCase) Login(ctx context.Context, sessionID string, in dto.LoginRequest) (*dto.LoginResponse, error) {
	seq, _, err := uc.sessions.Begin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, uc.fail(ctx, sessionID, seq, err)
	}
	if user == nil {
		return nil, uc.fail(ctx, sessionID, seq, domain.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, uc.fail(ctx, sessionID, seq, domain.ErrInvalidCredentials)
	}
	if user.Status != "active" {
		return nil, uc.fail(ctx, sessionID, seq, domain.ErrForbidden)
	}

	now := time.Now()
	user.LastLogin = now
	user.UpdatedAt = now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, uc.fail(ctx, sessionID, seq, err)
	}

	if _, err := uc.sessions.Complete(ctx, sessionID, seq, session.LoginSuccess{User: user}); err != nil {
		// Otra operación de login resolvió después de esta: se descarta sin pisarla.
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, sessionID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.notifier.Success("bienvenido de nuevo, " + user.Name)
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Register crea un usuario nuevo y lo autentica en la misma operación.
// Devuelve domain.ErrEmailAlreadyExists si el email ya está registrado; en ese
// caso el tamaño del repositorio no cambia.
func (uc *UseCase) Register(ctx context.Context, sessionID string, in dto.RegisterRequest) (*dto.LoginResponse, error) {
	seq, _, err := uc.sessions.Begin(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, uc.fail(ctx, sessionID, seq, err)
	}
	if existing != nil {
		return nil, uc.fail(ctx, sessionID, seq, domain.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, uc.fail(ctx, sessionID, seq, err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		Status:       "active",
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, uc.fail(ctx, sessionID, seq, domain.ErrEmailAlreadyExists)
		}
		return nil, uc.fail(ctx, sessionID, seq, err)
	}

	if _, err := uc.sessions.Complete(ctx, sessionID, seq, session.LoginSuccess{User: user}); err != nil {
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, sessionID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.notifier.Success("cuenta creada correctamente")
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// Logout elimina el snapshot persistido, veta el token y despacha Logout.
// Sin confirmación y no cancelable.
func (uc *UseCase) Logout(ctx context.Context, sessionID, jti string, expiresAt time.Time) error {
	if _, err := uc.sessions.Logout(ctx, sessionID); err != nil {
		return err
	}
	if err := uc.blacklist.Add(ctx, jti, expiresAt); err != nil {
		return err
	}
	uc.notifier.Success("sesión cerrada correctamente")
	return nil
}

// CurrentSession hidrata el snapshot persistido. Una sesión inexistente o
// corrupta se reporta como anónima, sin error.
func (uc *UseCase) CurrentSession(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	state, err := uc.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(state), nil
}

// ClearError limpia el último error de la sesión.
func (uc *UseCase) ClearError(ctx context.Context, sessionID string) error {
	_, err := uc.sessions.Dispatch(ctx, sessionID, session.ClearError{})
	return err
}

// UpdateProfile mezcla los campos presentes sobre el usuario actual y persiste.
// Si no hay usuario, no hace nada. Un fallo al guardar el snapshot de sesión se
// notifica pero NO revierte el cambio ya persistido en el repositorio.
func (uc *UseCase) UpdateProfile(ctx context.Context, sessionID, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(user); err != nil {
		uc.notifier.Error("no se pudo actualizar el perfil")
		return nil, err
	}

	if _, err := uc.sessions.Dispatch(ctx, sessionID, session.UpdateProfile{User: user}); err != nil {
		uc.notifier.Error("el perfil se guardó pero la sesión no pudo actualizarse")
	} else {
		uc.notifier.Success("perfil actualizado correctamente")
	}
	return toUserResponse(user), nil
}

// fail registra la finalización fallida (fenceada) y devuelve el error original.
func (uc *UseCase) fail(ctx context.Context, sessionID string, seq uint64, cause error) error {
	if _, err := uc.sessions.Complete(ctx, sessionID, seq, session.LoginFailure{Message: cause.Error()}); err != nil {
		if errors.Is(err, domain.ErrStaleRequest) {
			return err
		}
	}
	uc.notifier.Error(cause.Error())
	return cause
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if !u.LastLogin.IsZero() {
		last := u.LastLogin
		resp.LastLogin = &last
	}
	return resp
}

func toSessionResponse(s session.State) *dto.SessionResponse {
	return &dto.SessionResponse{
		Status:          s.Status(),
		IsAuthenticated: s.IsAuthenticated,
		IsLoading:       s.IsLoading,
		Error:           s.Error,
		User:            toUserResponse(s.User),
	}
}
