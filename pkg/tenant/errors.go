package tenant

import "errors"

// Erros comuns relacionados à organização da requisição
var (
	// ErrOrganizationNotSpecified ocorre quando o cabeçalho não é enviado
	ErrOrganizationNotSpecified = errors.New("O cabeçalho 'x-organization' é obrigatório")

	// ErrOrganizationNotFound ocorre quando a organização não existe ou está inativa
	ErrOrganizationNotFound = errors.New("organização não encontrada")
)
