package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações
type UnitOfWork interface {
	// WithTransaction executa fn dentro de uma transação; o contexto recebido
	// carrega a transação e deve ser repassado aos repositories.
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
