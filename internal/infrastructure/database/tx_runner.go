package database

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ usecase.AccountsTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner sobre la conexión abierta.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// RunAccounts inicia una transacción, ejecuta fn con los repos de cuentas atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	clients repository.ClientRepository,
	employees repository.EmployeeRepository,
) error) error {
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rn := runner{q: tx, d: r.db.Dialect}
	if err := fn(&ClientRepo{r: rn}, &EmployeeRepo{r: rn}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
