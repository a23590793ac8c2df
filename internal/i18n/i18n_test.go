package i18n

import "testing"

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		code string
		want string
	}{
		{"wrong_password", "auth/wrong-password", "Senha incorreta."},
		{"user_not_found", "auth/user-not-found", "Este e-mail não está cadastrado."},
		{"invalid_email", "auth/invalid-email", "O formato do e-mail é inválido."},
		{"weak_password", "auth/weak-password", "A senha precisa ter no mínimo 6 caracteres."},
		{"email_in_use", "auth/email-already-in-use", "Este e-mail já está em uso por outra conta."},
		{"unknown_code", "auth/too-many-requests", "Ocorreu um erro. Tente novamente."},
		{"empty_code", "", "Ocorreu um erro. Tente novamente."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Translate(tc.code); got != tc.want {
				t.Errorf("Translate(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}
