package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"travelcms/commands"
	"travelcms/constants"
	"travelcms/services"
	"travelcms/services/logger"
	"travelcms/services/notification"
)

// NightlySchedule runs at midnight every day
const NightlySchedule = "0 0 * * *"

// HomepageRefresher rebuilds the cached homepage
type HomepageRefresher interface {
	Refresh(ctx context.Context) (*services.HomepageView, error)
}

// Maintenance is the nightly slug backfill followed by a homepage cache refresh
type Maintenance struct {
	Commands []commands.Command
	Homepage HomepageRefresher
	Notifier notification.Service
	Logger   logger.Logger
	Timeout  time.Duration
}

// Run executes one maintenance pass
func (j *Maintenance) Run() {
	timeout := j.Timeout
	if timeout == 0 {
		timeout = 10 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	j.Logger.Info("nightly maintenance started at %v", time.Now())
	if err := commands.Run(ctx, j.Logger, j.Commands...); err != nil {
		return
	}
	if j.Homepage != nil {
		if _, err := j.Homepage.Refresh(ctx); err != nil {
			j.Logger.Error("homepage refresh failed: %v", err)
			return
		}
	}
	if j.Notifier != nil {
		msg := notification.NewMessageBuilder(constants.EventCacheRefreshed).
			Message("Catalog maintenance finished").
			Build()
		if err := j.Notifier.SendMessage(msg); err != nil {
			j.Logger.Debug("broadcast skipped: %v", err)
		}
	}
}

// InitCronJobs registers the nightly job and starts the scheduler
func InitCronJobs(c *cron.Cron, job *Maintenance) error {
	if _, err := c.AddFunc(NightlySchedule, job.Run); err != nil {
		return err
	}
	c.Start()
	job.Logger.Info("cron jobs initialized successfully")
	return nil
}
