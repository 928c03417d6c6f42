package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/nafemage/OSProject2/config"
	"github.com/nafemage/OSProject2/internal/requests"
	"github.com/nafemage/OSProject2/internal/responses"
	"github.com/nafemage/OSProject2/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// SetupRoutes mounts the scheduler endpoints under /api/v1.
func SetupRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	response := make(map[string]responses.ScheduleResult)
	for _, algorithm := range schedulers.Algorithms() {
		result, status, err := s.run(&request, algorithm)
		if err != nil {
			return ctx.Status(status).JSON(fiber.Map{"error": err.Error(), "algorithm": algorithm.String()})
		}
		response[algorithm.String()] = result
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}

	result, status, err := s.run(&request, algorithm)
	if err != nil {
		return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}

// run schedules a fresh ready queue built from request, so the same request
// can be replayed against several algorithms.
func (s *SchedulerHandlerImpl) run(request *requests.ScheduleRequests, algorithm schedulers.Algorithm) (responses.ScheduleResult, int, error) {
	var result responses.ScheduleResult

	readyQueue, err := request.ReadyQueue()
	if err != nil {
		return result, fiber.StatusBadRequest, err
	}

	timeQuantum := request.TimeQuantum
	if timeQuantum == 0 {
		timeQuantum = s.config.RoundRobinTimeQuantum
	}

	if err := schedulers.Run(algorithm, readyQueue, &result, timeQuantum); err != nil {
		log.Println("can not process request:", algorithm, err)
		if errors.Is(err, schedulers.ErrNotImplemented) {
			return result, fiber.StatusNotImplemented, err
		}
		return result, fiber.StatusUnprocessableEntity, err
	}
	return result, fiber.StatusOK, nil
}
