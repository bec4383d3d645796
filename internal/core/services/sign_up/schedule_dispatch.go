package signup

import (
	"context"
	"errors"

	e "selector/internal/core/domain/errors"
	"selector/internal/core/domain/logging"
	"selector/internal/core/domain/registration"
	"selector/internal/core/services"
)

type serviceWithTokenDispatching struct {
	log       logging.Logger
	scheduler registration.DispatchScheduler
	inner     services.Service[Input, Result]
}

func NewWithTokenDispatching(
	log logging.Logger,
	scheduler registration.DispatchScheduler,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithTokenDispatching{
		log:       log,
		scheduler: scheduler,
		inner:     inner,
	}
}

func (s *serviceWithTokenDispatching) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip scheduling register token dispatch.", logging.Entry("err", err))
		return result, err
	}

	err = s.scheduler.ScheduleDispatch(ctx, result.Account.ID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not schedule register token dispatch.",
			logging.Entry("accountId", result.Account.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Register token dispatch has been scheduled.",
		logging.Entry("accountId", result.Account.ID),
	)
	return result, nil
}
