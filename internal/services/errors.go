package services

import (
	domainerrors "github.com/OSUMed/feature-request-app/internal/domain/errors"
	"github.com/OSUMed/feature-request-app/internal/domain/ports"
)

// storageError loga a falha original e devolve um StorageError opaco
func storageError(logger ports.Logger, op string, err error) error {
	logger.Error("storage failure", "op", op, "error", err)
	return domainerrors.NewStorageError(op, err)
}
