package errors

import (
	"errors"
	"strings"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrUnauthenticated        = errors.New("error.unauthenticated")
	ErrForbidden              = errors.New("error.forbidden")
	ErrFeatureRequestNotFound = errors.New("error.feature_not_found")
	ErrUserNotFound           = errors.New("error.user_not_found")
	ErrEmailAlreadyExists     = errors.New("error.email_already_exists")
	ErrInvalidCredentials     = errors.New("error.invalid_credentials")
	ErrStorage                = errors.New("error.storage")
)

// Domain errors
var (
	ErrInvalidEmail = errors.New("error.invalid_email")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
	ProblemTypeUnauthenticated = "/problems/unauthenticated"
)

// FieldError descreve a violação de um campo de entrada
type FieldError struct {
	Field   string
	Tag     string // regra violada (required, max, oneof, ...)
	Param   string // parâmetro da regra, ex.: "100" para max
	Message string
}

// ValidationError agrupa violações de campo de uma entrada não confiável
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError cria um ValidationError com uma única violação
func NewValidationError(field, tag, param, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Tag: tag, Param: param, Message: message}}}
}

// StorageError encapsula qualquer falha da camada de persistência.
// O erro original fica disponível via Unwrap, mas nunca é exposto ao cliente.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return "storage: " + e.Op + ": " + e.Err.Error()
	}
	return "storage: " + e.Op
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, ErrStorage)
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError cria um StorageError para a operação
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}
