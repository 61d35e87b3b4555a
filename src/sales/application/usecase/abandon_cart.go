package usecase

import (
	"github.com/EnzoManrique/TrailerApp/src/sales/infrastructure/cache"

	"github.com/google/uuid"
)

// AbandonCartUseCase caso de uso para descartar una sesión sin vender
type AbandonCartUseCase struct {
	sessions *cache.CartSessionCache
}

// NewAbandonCartUseCase crea una nueva instancia del caso de uso
func NewAbandonCartUseCase(sessions *cache.CartSessionCache) *AbandonCartUseCase {
	return &AbandonCartUseCase{sessions: sessions}
}

// Execute descarta la sesión. Descartar una sesión inexistente no es error.
func (uc *AbandonCartUseCase) Execute(sessionID uuid.UUID) {
	uc.sessions.Delete(sessionID)
}
