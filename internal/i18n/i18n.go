// Package i18n maps backend error codes to the user-facing pt-BR messages
// shown by the mobile clients.
package i18n

// Translate returns the localized message for a backend error code.
// It is total: unrecognized codes (including the empty string) fall back
// to a generic message.
func Translate(code string) string {
	switch code {
	case "auth/wrong-password":
		return "Senha incorreta."
	case "auth/user-not-found":
		return "Este e-mail não está cadastrado."
	case "auth/invalid-email":
		return "O formato do e-mail é inválido."
	case "auth/weak-password":
		return "A senha precisa ter no mínimo 6 caracteres."
	case "auth/email-already-in-use":
		return "Este e-mail já está em uso por outra conta."
	default:
		return "Ocorreu um erro. Tente novamente."
	}
}
