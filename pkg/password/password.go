// Package password centraliza la política de contraseñas para las cuentas del personal.
package password

import "unicode"

// Requisitos: mínimo 8 caracteres, al menos una mayúscula, un número y un
// carácter especial (no alfanumérico).
const minLength = 8

// Validate verifica que la contraseña cumpla la política.
// Devuelve false y un mensaje apto para el usuario cuando no la cumple.
func Validate(pw string) (bool, string) {
	runes := []rune(pw)
	if len(runes) < minLength {
		return false, "La contraseña debe tener al menos 8 caracteres."
	}
	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return false, "La contraseña debe contener al menos una letra mayúscula."
	}
	if !hasDigit {
		return false, "La contraseña debe contener al menos un número."
	}
	if !hasSymbol {
		return false, "La contraseña debe contener al menos un carácter especial."
	}
	return true, ""
}
