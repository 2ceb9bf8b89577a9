package cli

import (
	"fmt"
	"sync"

	"github.com/axl-labs/axlkeep/internal/config"
	"github.com/axl-labs/axlkeep/internal/credstore"
	"github.com/axl-labs/axlkeep/internal/output"
	"github.com/axl-labs/axlkeep/internal/secrets"
)

// StoreProvider lazily creates and caches the backend and credential store,
// so commands that never touch storage don't pay for backend setup.
type StoreProvider struct {
	cfg     *config.Config
	globals *Globals

	once    sync.Once
	backend secrets.Backend
	store   *credstore.Store
	err     error
}

// NewStoreProvider creates a StoreProvider with the given config.
func NewStoreProvider(cfg *config.Config, globals *Globals) *StoreProvider {
	return &StoreProvider{cfg: cfg, globals: globals}
}

func (sp *StoreProvider) init() {
	sp.once.Do(func() {
		if sp.globals.DryRun {
			sp.backend = secrets.NewMemoryBackend()
			sp.store = credstore.New(sp.backend)
			return
		}

		backend, err := secrets.NewBackend(sp.cfg.Backend)
		if err != nil {
			sp.err = &output.CLIError{
				ExitCode: output.ExitStoreError,
				Message:  fmt.Sprintf("Failed to initialize secure storage: %v", err),
			}
			return
		}

		sp.backend = backend
		sp.store = credstore.New(backend)
	})
}

// Store returns the credential store, creating it on first call.
func (sp *StoreProvider) Store() (*credstore.Store, error) {
	sp.init()
	return sp.store, sp.err
}

// Backend returns the raw storage backend, creating it on first call.
// Only the clear --everything path needs it; everything else goes through
// the store.
func (sp *StoreProvider) Backend() (secrets.Backend, error) {
	sp.init()
	return sp.backend, sp.err
}
