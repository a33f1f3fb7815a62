package cron

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"companion.GO/core/logger"
)

// zapLogger adapts the process logger to cron.Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.s.Debugw("cron: "+msg, keysAndValues...)
}

func (l zapLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.s.Errorw("cron: "+msg, append(keysAndValues, "error", err)...)
}

// StartCron schedules the registered jobs plus extra (process-local jobs such as the
// session sweep) and starts the scheduler. A panicking job is logged and recovered.
func StartCron(extra map[string]Job) (*cron.Cron, error) {
	cl := zapLogger{s: logger.L().Sugar()}
	c := cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl)))

	jobs := Jobs()
	for name, j := range extra {
		if _, dup := jobs[name]; dup {
			return nil, fmt.Errorf("cron job %s registered twice", name)
		}
		jobs[name] = j
	}
	for _, name := range Names(jobs) {
		j := jobs[name]
		jobName, run := name, j.Run
		if _, err := c.AddFunc(j.Schedule, func() {
			logger.L().Debug("cron job run", zap.String("job", jobName))
			run()
		}); err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
	}
	c.Start()
	logger.L().Info("cron scheduler started", zap.Strings("jobs", Names(jobs)))
	return c, nil
}
