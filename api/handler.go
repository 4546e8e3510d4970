package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	MultilevelQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger.With("component", "api")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) MultilevelQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.RunAll(request.Table(), s.params(request), s.logger)
	if err != nil {
		s.logger.Warn("can not process request", logging.ErrAttr(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.Run(request.Table(), algorithm, s.params(request), s.logger)
	if err != nil {
		s.logger.Warn("can not process request", "algorithm", string(algorithm), logging.ErrAttr(err))
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("invalid request body", logging.ErrAttr(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, false
	}
	return &request, true
}

// params fills zero quanta from the configured defaults.
func (s *SchedulerHandlerImpl) params(request *requests.ScheduleRequests) schedulers.Params {
	params := schedulers.Params{
		Quantum:     request.Quantum,
		QuantumHigh: request.QuantumHigh,
		QuantumLow:  request.QuantumLow,
	}
	if params.Quantum == 0 {
		params.Quantum = s.config.RoundRobinTimeQuantum
	}
	if params.QuantumHigh == 0 {
		params.QuantumHigh = s.config.MultilevelQueueHigh
	}
	if params.QuantumLow == 0 {
		params.QuantumLow = s.config.MultilevelQueueLow
	}
	return params
}
