package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	ErrMissingField          = errors.New("campo obligatorio ausente")
	ErrAuthentication        = errors.New("autenticación con la plataforma fallida")
	ErrUpstreamUnavailable   = errors.New("plataforma de origen no disponible")
	ErrGatewaySubmission     = errors.New("envío a la pasarela de fiscalización fallido")
	ErrTaxPinRequired        = errors.New("comprador empresarial sin TIN")
	ErrUnsupportedPlatform   = errors.New("plataforma no soportada")
	ErrDuplicateSubmission   = errors.New("documento ya enviado a la pasarela")
	ErrCapabilityUnsupported = errors.New("operación no soportada por la plataforma")
)

// MissingFieldError indica que un identificador estructural falta en los datos de origen.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo obligatorio ausente: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// NewMissingField construye un MissingFieldError.
func NewMissingField(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

// UpstreamError lectura fallida contra la plataforma de origen; Op identifica el paso.
type UpstreamError struct {
	Platform string
	Op       string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s no disponible: %v", e.Platform, e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstreamUnavailable, e.Err} }

// AuthError fallo de firma de webhook o de refresco de credenciales OAuth2.
type AuthError struct {
	Platform string
	Err      error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: autenticación fallida: %v", e.Platform, e.Err)
}

func (e *AuthError) Unwrap() []error { return []error{ErrAuthentication, e.Err} }

// GatewayError fallo de transporte al llamar a la pasarela. No se reintenta.
type GatewayError struct {
	Endpoint string
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway: POST %s fallido: %v", e.Endpoint, e.Err)
}

func (e *GatewayError) Unwrap() []error { return []error{ErrGatewaySubmission, e.Err} }

// ValidationWarning problema de calidad de datos que se registra pero no bloquea el envío.
type ValidationWarning struct {
	Code    string
	Message string
}

func (w ValidationWarning) String() string {
	return w.Code + ": " + w.Message
}

// Códigos de advertencia.
const (
	WarnBusinessWithoutTaxPin = "BUSINESS_WITHOUT_TAX_PIN"
	WarnExtraParentDocuments  = "EXTRA_PARENT_DOCUMENTS_IGNORED"
)
