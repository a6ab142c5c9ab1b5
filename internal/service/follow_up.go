package service

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// followUps runs refreshes that must never affect the outcome of the
// operation that scheduled them. Failures and panics are logged only.
type followUps struct {
	wg  sync.WaitGroup
	log *logrus.Logger
}

func newFollowUps(log *logrus.Logger) *followUps {
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	}
	return &followUps{log: log}
}

func (f *followUps) Go(ctx context.Context, op string, fn func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				f.log.WithFields(logrus.Fields{"op": op, "panic": r}).Error("follow-up refresh panicked")
			}
		}()

		if err := fn(ctx); err != nil {
			f.log.WithError(err).WithField("op", op).Warn("follow-up refresh failed")
		}
	}()
}

func (f *followUps) Wait() {
	f.wg.Wait()
}
