package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrValidacao            = errors.New("entrada inválida")
	ErrDadosInvalidos       = errors.New("dado armazenado com tipo ou formato inesperado")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrAcessoNegado         = errors.New("acesso negado")
	ErrAnexoNaoPermitido    = errors.New("tipo de anexo não permitido")
)
