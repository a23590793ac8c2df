package session

import (
	"net/http"

	"financas/internal/backend"
	apperrors "financas/internal/errors"
	"financas/internal/i18n"
	"financas/internal/logger"
	"financas/internal/navigation"
)

// State is a step of the login/sign-up state machine.
type State int

const (
	StateIdle State = iota
	StateAuthenticating
	StateRegistering
	StateAuthenticated
	StateFailed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAuthenticating:
		return "authenticating"
	case StateRegistering:
		return "registering"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// RegisterPrompt decides whether an unknown email should be auto-registered
// with the credentials the user just typed. It stands in for the mobile
// confirmation dialog; a nil prompt always declines.
type RegisterPrompt func(email string) bool

// Controller drives the authentication workflow against the backend facade.
// One login or register call may be in flight per controller instance;
// gating repeated submission is the interaction layer's concern.
type Controller struct {
	auth     backend.Authenticator
	sessions *Manager
	state    State
}

// NewController creates a controller in the Idle state.
func NewController(auth backend.Authenticator, sessions *Manager) *Controller {
	return &Controller{auth: auth, sessions: sessions, state: StateIdle}
}

// State returns the controller's current workflow state.
func (c *Controller) State() State {
	return c.state
}

// Login authenticates the credentials. When the email is unknown, prompt is
// consulted: accepting registers a new account with the same credentials,
// declining quietly settles back to Idle with no error surfaced.
func (c *Controller) Login(email, password string, prompt RegisterPrompt) (*Session, navigation.Route, error) {
	if email == "" || password == "" {
		return nil, navigation.RouteNone, apperrors.WithMessage(apperrors.ErrMissingFields, "Por favor, preencha e-mail e senha.")
	}

	c.state = StateAuthenticating
	user, err := c.auth.Authenticate(email, password)
	if err != nil {
		if backend.CodeOf(err) != backend.CodeUserNotFound {
			c.state = StateFailed
			return nil, navigation.RouteNone, translated(err)
		}

		if prompt == nil || !prompt(email) {
			// The user chose not to create an account; nothing is surfaced.
			logger.Get().Infow("auto-register declined", "email", email)
			c.state = StateIdle
			return nil, navigation.RouteNone, nil
		}

		c.state = StateRegistering
		user, err = c.auth.Register(email, password)
		if err != nil {
			c.state = StateFailed
			return nil, navigation.RouteNone, translated(err)
		}
	}

	sess := FromUser(user)
	c.sessions.Set(sess)
	c.state = StateAuthenticated
	return sess, navigation.RouteHome, nil
}

// Register creates an account from the sign-up form. Field checks are local
// and short-circuit before any backend call. Attaching the display name is
// best-effort: a failure is logged but never blocks navigation home.
func (c *Controller) Register(name, email, password, confirmPassword string) (*Session, navigation.Route, error) {
	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return nil, navigation.RouteNone, apperrors.ErrMissingFields
	}
	if password != confirmPassword {
		return nil, navigation.RouteNone, apperrors.ErrPasswordMismatch
	}

	c.state = StateRegistering
	user, err := c.auth.Register(email, password)
	if err != nil {
		c.state = StateFailed
		return nil, navigation.RouteNone, translated(err)
	}

	if err := c.auth.UpdateDisplayName(user.ID, name); err != nil {
		logger.Get().Errorw("failed to attach display name", "user_id", user.ID, "error", err)
	} else {
		user.DisplayName = name
	}

	sess := FromUser(user)
	c.sessions.Set(sess)
	c.state = StateAuthenticated
	return sess, navigation.RouteHome, nil
}

// Logout signs out unconditionally. A sign-out failure keeps the session
// and is logged only; the caller stays on the current screen.
func (c *Controller) Logout() navigation.Route {
	if err := c.auth.SignOut(); err != nil {
		logger.Get().Errorw("sign-out failed", "error", err)
		return navigation.RouteNone
	}

	c.sessions.Clear()
	c.state = StateIdle
	return navigation.RouteLogin
}

// translated converts a backend failure into a user-facing error with the
// localized message for its code. Uncoded errors get the generic fallback.
func translated(err error) *apperrors.AppError {
	code := backend.CodeOf(err)
	if code == "" {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &apperrors.AppError{
		Code:       code,
		Message:    i18n.Translate(code),
		StatusCode: statusFor(code),
		Internal:   err,
	}
}

// statusFor maps a backend error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case backend.CodeWrongPassword:
		return http.StatusUnauthorized
	case backend.CodeUserNotFound:
		return http.StatusNotFound
	case backend.CodeInvalidEmail, backend.CodeWeakPassword:
		return http.StatusBadRequest
	case backend.CodeEmailInUse:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
