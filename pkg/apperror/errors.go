package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifica um erro de aplicação
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindBadRequest      Kind = "BAD_REQUEST"
	KindUnprocessable   Kind = "UNPROCESSABLE"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindForbidden       Kind = "FORBIDDEN"
	KindPaymentRequired Kind = "PAYMENT_REQUIRED"
	KindConflict        Kind = "CONFLICT"
	KindTooManyRequests Kind = "TOO_MANY_REQUESTS"
	KindInternal        Kind = "INTERNAL"
)

// Error é o erro tipado propagado entre repositórios, serviços e a borda HTTP
type Error struct {
	Kind    Kind
	Entity  string
	ID      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is permite errors.Is(err, &Error{Kind: ...}) comparar apenas pelo tipo
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Entity == "" && t.Message == ""
}

// NotFound indica que a entidade não existe no tenant
func NotFound(entity, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s não encontrado(a): %s", entity, id),
	}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func Unprocessable(message string) *Error {
	return &Error{Kind: KindUnprocessable, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func PaymentRequired(message string) *Error {
	return &Error{Kind: KindPaymentRequired, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func TooManyRequests(message string) *Error {
	return &Error{Kind: KindTooManyRequests, Message: message}
}

// Internal embrulha uma falha inesperada; a mensagem não é exposta ao cliente
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "erro interno", Err: err}
}

// KindOf retorna o tipo do erro ou KindInternal quando não for um *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// IsKind verifica se algum erro da cadeia é do tipo informado
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

func IsConflict(err error) bool {
	return IsKind(err, KindConflict)
}

// HTTPStatus mapeia o erro para o status HTTP correspondente
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindPaymentRequired:
		return http.StatusPaymentRequired
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage retorna a mensagem segura para o cliente
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) || appErr.Kind == KindInternal {
		return "erro interno"
	}
	return appErr.Message
}
