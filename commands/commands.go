package commands

import (
	"context"

	"travelcms/services/logger"
)

// Command is a maintenance task run from the CLI or the scheduler
type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

// Run executes cmds in order and stops at the first failure
func Run(ctx context.Context, log logger.Logger, cmds ...Command) error {
	for _, cmd := range cmds {
		log.Info("running %s", cmd.Name())
		if err := cmd.Execute(ctx); err != nil {
			log.Error("%s failed: %v", cmd.Name(), err)
			return err
		}
	}
	return nil
}
