package error_notificator

import (
	"context"
	"fmt"
	"time"

	"github.com/Vovarama1992/go-utils/logger"
)

const notifyTimeout = 10 * time.Second

type Service struct {
	infra   Notificator
	log     *logger.ZapLogger
	service string
}

func NewService(infra Notificator, log *logger.ZapLogger, service string) *Service {
	if infra == nil {
		infra = NopInfra{}
	}
	return &Service{infra: infra, log: log, service: service}
}

// Notify никогда не возвращает ошибку: сбой отправки только пишется в лог.
func (s *Service) Notify(ctx context.Context, err error, details string) error {
	if sendErr := s.infra.Notify(ctx, err, details); sendErr != nil && s.log != nil {
		s.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: "[error_notificator] send fail",
			Service: s.service,
			Error:   sendErr,
		})
	}
	return nil
}

// NotifyAsync отправляет уведомление в фоне, не завися от контекста запроса.
func (s *Service) NotifyAsync(err error, details string) {
	go func() {
		defer s.recoverPanic()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		_ = s.Notify(ctx, err, details)
	}()
}

// паника в фоновой отправке не должна ронять процесс
func (s *Service) recoverPanic() {
	rec := recover()
	if rec == nil || s.log == nil {
		return
	}
	s.log.Log(logger.LogEntry{
		Level:   "error",
		Message: "[error_notificator] panic",
		Service: s.service,
		Error:   fmt.Errorf("panic: %v", rec),
	})
}
