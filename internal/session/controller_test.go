package session

import (
	"errors"
	"testing"

	"financas/internal/backend"
	apperrors "financas/internal/errors"
	"financas/internal/models"
	"financas/internal/navigation"
	"financas/internal/testutil"
)

// mockAuthenticator lets tests control each backend call.
type mockAuthenticator struct {
	authenticateFn      func(email, password string) (*models.User, error)
	registerFn          func(email, password string) (*models.User, error)
	updateDisplayNameFn func(userID, displayName string) error
	signOutFn           func() error

	authenticateCalls int
	registerCalls     int
}

func (m *mockAuthenticator) Authenticate(email, password string) (*models.User, error) {
	m.authenticateCalls++
	if m.authenticateFn != nil {
		return m.authenticateFn(email, password)
	}
	return nil, errors.New("unexpected Authenticate call")
}

func (m *mockAuthenticator) Register(email, password string) (*models.User, error) {
	m.registerCalls++
	if m.registerFn != nil {
		return m.registerFn(email, password)
	}
	return nil, errors.New("unexpected Register call")
}

func (m *mockAuthenticator) UpdateDisplayName(userID, displayName string) error {
	if m.updateDisplayNameFn != nil {
		return m.updateDisplayNameFn(userID, displayName)
	}
	return nil
}

func (m *mockAuthenticator) SignOut() error {
	if m.signOutFn != nil {
		return m.signOutFn()
	}
	return nil
}

func testUser() *models.User {
	return &models.User{
		Base:  models.Base{ID: "user-1"},
		Email: "ana@example.com",
	}
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return testUser(), nil
			},
		}
		sessions := NewManager()
		c := NewController(auth, sessions)

		sess, next, err := c.Login("ana@example.com", "senha123", nil)
		testutil.AssertNoError(t, err)

		if sess == nil || sess.UserID != "user-1" {
			t.Fatal("expected session for user-1")
		}
		if next != navigation.RouteHome {
			t.Errorf("expected route %s, got %s", navigation.RouteHome, next)
		}
		if c.State() != StateAuthenticated {
			t.Errorf("expected state authenticated, got %s", c.State())
		}
		if sessions.Current() == nil || sessions.Current().UserID != "user-1" {
			t.Error("expected session to be installed in the manager")
		}
	})

	t.Run("missing_fields_skip_backend", func(t *testing.T) {
		auth := &mockAuthenticator{}
		c := NewController(auth, NewManager())

		_, _, err := c.Login("", "senha123", nil)
		testutil.AssertAppError(t, err, apperrors.ErrMissingFields.Code)
		if err.Error() != "Por favor, preencha e-mail e senha." {
			t.Errorf("unexpected message: %s", err.Error())
		}

		_, _, err = c.Login("ana@example.com", "", nil)
		testutil.AssertAppError(t, err, apperrors.ErrMissingFields.Code)

		if auth.authenticateCalls != 0 {
			t.Errorf("expected no backend calls, got %d", auth.authenticateCalls)
		}
		if c.State() != StateIdle {
			t.Errorf("expected state idle, got %s", c.State())
		}
	})

	t.Run("wrong_password_translated", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeWrongPassword, nil)
			},
		}
		c := NewController(auth, NewManager())

		_, next, err := c.Login("ana@example.com", "errada", nil)
		testutil.AssertAppError(t, err, backend.CodeWrongPassword)
		if err.Error() != "Senha incorreta." {
			t.Errorf("expected localized message, got %s", err.Error())
		}
		if next != navigation.RouteNone {
			t.Errorf("expected no navigation, got %s", next)
		}
		if c.State() != StateFailed {
			t.Errorf("expected state failed, got %s", c.State())
		}
	})

	t.Run("unknown_email_declined_is_silent", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeUserNotFound, nil)
			},
		}
		sessions := NewManager()
		c := NewController(auth, sessions)

		decline := func(email string) bool { return false }
		sess, next, err := c.Login("nova@example.com", "senha123", decline)
		testutil.AssertNoError(t, err)

		if sess != nil {
			t.Error("expected no session on decline")
		}
		if next != navigation.RouteNone {
			t.Errorf("expected no navigation, got %s", next)
		}
		if c.State() != StateIdle {
			t.Errorf("expected state idle after decline, got %s", c.State())
		}
		if auth.registerCalls != 0 {
			t.Error("expected no register call on decline")
		}
		if sessions.Current() != nil {
			t.Error("expected no session installed on decline")
		}
	})

	t.Run("unknown_email_nil_prompt_declines", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeUserNotFound, nil)
			},
		}
		c := NewController(auth, NewManager())

		sess, _, err := c.Login("nova@example.com", "senha123", nil)
		testutil.AssertNoError(t, err)
		if sess != nil {
			t.Error("expected no session without a prompt")
		}
		if auth.registerCalls != 0 {
			t.Error("expected no register call without a prompt")
		}
	})

	t.Run("unknown_email_accepted_registers_same_credentials", func(t *testing.T) {
		var registeredEmail, registeredPassword string
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeUserNotFound, nil)
			},
			registerFn: func(email, password string) (*models.User, error) {
				registeredEmail, registeredPassword = email, password
				return testUser(), nil
			},
		}
		sessions := NewManager()
		c := NewController(auth, sessions)

		accept := func(email string) bool { return true }
		sess, next, err := c.Login("ana@example.com", "senha123", accept)
		testutil.AssertNoError(t, err)

		if registeredEmail != "ana@example.com" || registeredPassword != "senha123" {
			t.Errorf("expected register with typed credentials, got %s/%s", registeredEmail, registeredPassword)
		}
		if sess == nil {
			t.Fatal("expected session after auto-register")
		}
		if next != navigation.RouteHome {
			t.Errorf("expected route %s, got %s", navigation.RouteHome, next)
		}
		if c.State() != StateAuthenticated {
			t.Errorf("expected state authenticated, got %s", c.State())
		}
		if sessions.Current() == nil {
			t.Error("expected session installed after auto-register")
		}
	})

	t.Run("auto_register_failure_translated", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeUserNotFound, nil)
			},
			registerFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeWeakPassword, nil)
			},
		}
		c := NewController(auth, NewManager())

		accept := func(email string) bool { return true }
		_, _, err := c.Login("ana@example.com", "123", accept)
		testutil.AssertAppError(t, err, backend.CodeWeakPassword)
		if err.Error() != "A senha precisa ter no mínimo 6 caracteres." {
			t.Errorf("expected localized message, got %s", err.Error())
		}
		if c.State() != StateFailed {
			t.Errorf("expected state failed, got %s", c.State())
		}
	})

	t.Run("uncoded_error_gets_generic_fallback", func(t *testing.T) {
		auth := &mockAuthenticator{
			authenticateFn: func(email, password string) (*models.User, error) {
				return nil, errors.New("connection refused")
			},
		}
		c := NewController(auth, NewManager())

		_, _, err := c.Login("ana@example.com", "senha123", nil)
		testutil.AssertAppError(t, err, apperrors.ErrInternalServer.Code)
		if err.Error() != "Ocorreu um erro. Tente novamente." {
			t.Errorf("expected generic message, got %s", err.Error())
		}
	})
}

func TestRegisterWorkflow(t *testing.T) {
	t.Run("success_attaches_display_name", func(t *testing.T) {
		var attachedName string
		auth := &mockAuthenticator{
			registerFn: func(email, password string) (*models.User, error) {
				return testUser(), nil
			},
			updateDisplayNameFn: func(userID, displayName string) error {
				attachedName = displayName
				return nil
			},
		}
		sessions := NewManager()
		c := NewController(auth, sessions)

		sess, next, err := c.Register("Ana Silva", "ana@example.com", "senha123", "senha123")
		testutil.AssertNoError(t, err)

		if attachedName != "Ana Silva" {
			t.Errorf("expected display name attached, got %q", attachedName)
		}
		if sess.DisplayName != "Ana Silva" {
			t.Errorf("expected session display name, got %q", sess.DisplayName)
		}
		if next != navigation.RouteHome {
			t.Errorf("expected route %s, got %s", navigation.RouteHome, next)
		}
		if c.State() != StateAuthenticated {
			t.Errorf("expected state authenticated, got %s", c.State())
		}
	})

	t.Run("missing_fields_skip_backend", func(t *testing.T) {
		auth := &mockAuthenticator{}
		c := NewController(auth, NewManager())

		cases := [][4]string{
			{"", "ana@example.com", "senha123", "senha123"},
			{"Ana", "", "senha123", "senha123"},
			{"Ana", "ana@example.com", "", "senha123"},
			{"Ana", "ana@example.com", "senha123", ""},
		}
		for _, fields := range cases {
			_, _, err := c.Register(fields[0], fields[1], fields[2], fields[3])
			testutil.AssertAppError(t, err, apperrors.ErrMissingFields.Code)
		}
		if auth.registerCalls != 0 {
			t.Errorf("expected no backend calls, got %d", auth.registerCalls)
		}
	})

	t.Run("password_mismatch_skips_backend", func(t *testing.T) {
		auth := &mockAuthenticator{}
		c := NewController(auth, NewManager())

		_, _, err := c.Register("Ana", "ana@example.com", "senha123", "senha124")
		testutil.AssertAppError(t, err, apperrors.ErrPasswordMismatch.Code)
		if err.Error() != "As senhas não conferem." {
			t.Errorf("unexpected message: %s", err.Error())
		}
		if auth.registerCalls != 0 {
			t.Error("expected no backend call on mismatch")
		}
	})

	t.Run("email_in_use_translated", func(t *testing.T) {
		auth := &mockAuthenticator{
			registerFn: func(email, password string) (*models.User, error) {
				return nil, backend.NewError(backend.CodeEmailInUse, nil)
			},
		}
		c := NewController(auth, NewManager())

		_, _, err := c.Register("Ana", "ana@example.com", "senha123", "senha123")
		testutil.AssertAppError(t, err, backend.CodeEmailInUse)
		if err.Error() != "Este e-mail já está em uso por outra conta." {
			t.Errorf("expected localized message, got %s", err.Error())
		}
		if c.State() != StateFailed {
			t.Errorf("expected state failed, got %s", c.State())
		}
	})

	t.Run("display_name_failure_still_authenticates", func(t *testing.T) {
		auth := &mockAuthenticator{
			registerFn: func(email, password string) (*models.User, error) {
				return testUser(), nil
			},
			updateDisplayNameFn: func(userID, displayName string) error {
				return backend.NewError(backend.CodeWriteFailed, errors.New("timeout"))
			},
		}
		sessions := NewManager()
		c := NewController(auth, sessions)

		sess, next, err := c.Register("Ana", "ana@example.com", "senha123", "senha123")
		testutil.AssertNoError(t, err)

		if sess == nil {
			t.Fatal("expected session despite display-name failure")
		}
		if sess.DisplayName != "" {
			t.Errorf("expected empty display name, got %q", sess.DisplayName)
		}
		if next != navigation.RouteHome {
			t.Errorf("expected route %s, got %s", navigation.RouteHome, next)
		}
		if c.State() != StateAuthenticated {
			t.Errorf("expected state authenticated, got %s", c.State())
		}
	})
}

func TestLogout(t *testing.T) {
	t.Run("success_clears_session", func(t *testing.T) {
		auth := &mockAuthenticator{}
		sessions := NewManager()
		sessions.Set(&Session{UserID: "user-1"})
		c := NewController(auth, sessions)
		c.state = StateAuthenticated

		next := c.Logout()
		if next != navigation.RouteLogin {
			t.Errorf("expected route %s, got %s", navigation.RouteLogin, next)
		}
		if sessions.Current() != nil {
			t.Error("expected session cleared")
		}
		if c.State() != StateIdle {
			t.Errorf("expected state idle, got %s", c.State())
		}
	})

	t.Run("failure_keeps_session_and_stays_put", func(t *testing.T) {
		auth := &mockAuthenticator{
			signOutFn: func() error { return errors.New("network down") },
		}
		sessions := NewManager()
		sessions.Set(&Session{UserID: "user-1"})
		c := NewController(auth, sessions)
		c.state = StateAuthenticated

		next := c.Logout()
		if next != navigation.RouteNone {
			t.Errorf("expected no navigation on failure, got %s", next)
		}
		if sessions.Current() == nil {
			t.Error("expected session kept on failure")
		}
		if c.State() != StateAuthenticated {
			t.Errorf("expected state unchanged, got %s", c.State())
		}
	})
}

func TestManager(t *testing.T) {
	m := NewManager()
	if m.Current() != nil {
		t.Error("expected empty manager")
	}

	first := &Session{UserID: "user-1"}
	m.Set(first)
	if m.Current() != first {
		t.Error("expected first session to be current")
	}

	second := &Session{UserID: "user-2"}
	m.Set(second)
	if m.Current() != second {
		t.Error("expected a new login to replace the previous session")
	}

	m.Clear()
	if m.Current() != nil {
		t.Error("expected cleared manager")
	}
}
