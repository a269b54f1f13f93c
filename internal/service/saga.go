package service

import (
	"context"
	"coursehub_backend/pkg/logger"
	"coursehub_backend/pkg/tracing"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type compensation struct {
	step string
	undo func(context.Context) error
}

// Saga 顺序执行多个步骤，失败时按相反顺序执行已完成步骤的补偿动作
type Saga struct {
	name          string
	compensations []compensation
}

func NewSaga(name string) *Saga {
	return &Saga{name: name}
}

// Run 执行一个步骤，成功后登记 undo（可为 nil）
func (s *Saga) Run(ctx context.Context, step string, action func(context.Context) error, undo func(context.Context) error) error {
	ctx, span := tracing.Tracer.Start(ctx, s.name+"."+step)
	defer span.End()

	if err := action(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("%s: %w", step, err)
	}
	if undo != nil {
		s.compensations = append(s.compensations, compensation{step: step, undo: undo})
	}
	return nil
}

// Compensate 逆序回滚。补偿不受请求取消影响，所有补偿都会执行，错误合并返回。
func (s *Saga) Compensate(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)
	ctx, span := tracing.Tracer.Start(ctx, s.name+".compensate")
	defer span.End()
	span.SetAttributes(attribute.Int("saga.compensations", len(s.compensations)))

	var errs error
	for i := len(s.compensations) - 1; i >= 0; i-- {
		c := s.compensations[i]
		if err := c.undo(ctx); err != nil {
			logger.Log.Error("saga compensation failed",
				zap.String("saga", s.name),
				zap.String("step", c.step),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("undo %s: %w", c.step, err))
		}
	}
	s.compensations = nil
	if errs != nil {
		span.SetStatus(codes.Error, errs.Error())
	}
	return errs
}
