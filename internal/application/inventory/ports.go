package inventory

import (
	"context"

	"github.com/jhoicas/wms-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción de BD.
type TxRepos struct {
	Movements      repository.MovementRepository
	Inventory      repository.InventoryRepository
	Lots           repository.LotRepository
	Receptions     repository.ReceptionRepository
	Replenishments repository.ReplenishmentRepository
	Alerts         repository.AlertRepository
	Readings       repository.TemperatureReadingRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error se hace Rollback; si no, Commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}
