package apperror

import (
	"errors"
	"net/http"
)

// Closed error taxonomy of the API. Handlers never return a raw engine
// error: everything is wrapped in one of these sentinels.
var (
	ErrTokenFaltante       = errors.New("token no proporcionado")
	ErrTokenExpirado       = errors.New("el token ha expirado")
	ErrTokenInvalido       = errors.New("token inválido")
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")
	ErrPermisoDenegado     = errors.New("permiso denegado")

	ErrCredencialesInvalidas = errors.New("credenciales inválidas")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
	ErrDemasiadosIntentos    = errors.New("demasiados intentos, espere un momento")

	ErrCampoRequerido     = errors.New("campo requerido")
	ErrFormatoInvalido    = errors.New("formato inválido")
	ErrReferenciaInvalida = errors.New("referencia inválida")
	ErrConflicto          = errors.New("conflicto de unicidad")
	ErrNoEncontrado       = errors.New("recurso no encontrado")
	ErrInterno            = errors.New("error interno del servidor")
)

// MapErrorToStatus translates a taxonomy error into its HTTP status code.
// Anything outside the taxonomy is a 500.
func MapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, ErrNoEncontrado), errors.Is(err, ErrUsuarioNoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, ErrTokenFaltante),
		errors.Is(err, ErrTokenExpirado),
		errors.Is(err, ErrTokenInvalido),
		errors.Is(err, ErrCredencialesInvalidas):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermisoDenegado), errors.Is(err, ErrUsuarioInactivo):
		return http.StatusForbidden
	case errors.Is(err, ErrConflicto):
		return http.StatusConflict
	case errors.Is(err, ErrDemasiadosIntentos):
		return http.StatusTooManyRequests
	case errors.Is(err, ErrCampoRequerido),
		errors.Is(err, ErrFormatoInvalido),
		errors.Is(err, ErrReferenciaInvalida):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
