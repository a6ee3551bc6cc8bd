package cleaner

import (
	"fmt"

	"github.com/nguyentantai21042004/meeting-scribe/internal/config"
	"github.com/nguyentantai21042004/meeting-scribe/internal/logger"
	"github.com/nguyentantai21042004/meeting-scribe/pkg/executor"
)

// New builds the Cleaner selected by cfg.Provider.
func New(cfg config.CleanerConfig, exec executor.Executor, log logger.Logger) (Cleaner, error) {
	switch cfg.Provider {
	case "", "gemini":
		return NewGemini(cfg.APIKeys, cfg.Model, cfg.Prompt, log)
	case "command":
		return NewCommand(exec, cfg.Command, cfg.Args...), nil
	case "identity":
		return NewIdentity(), nil
	default:
		return nil, fmt.Errorf("unsupported cleaner provider %q", cfg.Provider)
	}
}
