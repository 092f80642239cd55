package usecase

import (
	"context"

	"github.com/secmon-lab/blockrelay/pkg/domain/model"
)

// BlocklistUseCase defines the interface for blocklist relay operations
type BlocklistUseCase interface {
	// Execute performs one add or remove action against the panel
	Execute(ctx context.Context, req model.ActionRequest) (*model.ActionOutcome, error)
}

var _ BlocklistUseCase = (*Blocklist)(nil)
