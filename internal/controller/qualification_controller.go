package controller

import (
	"strconv"

	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/serverutils"
	"beauty-advisor-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQualificationController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Answer(ctx *fiber.Ctx) error
	Recommendations(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Categories(ctx *fiber.Ctx) error
}

type qualificationController struct {
	qualificationService service.IQualificationService
}

func NewQualificationController(qualificationService service.IQualificationService) IQualificationController {
	return &qualificationController{
		qualificationService: qualificationService,
	}
}

func (c *qualificationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/advisor/v1")
	h.Get("categories", c.Categories)
	h.Post("qualification/start", c.Start)
	h.Post("qualification/answer", c.Answer)
	h.Get("qualification/:sessionId/recommendations", c.Recommendations)
	h.Delete("qualification/:sessionId", c.Clear)
}

func (c *qualificationController) Start(ctx *fiber.Ctx) error {
	var req dto.StartQualificationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.qualificationService.StartQualification(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Qualification started", res))
}

func (c *qualificationController) Answer(ctx *fiber.Ctx) error {
	var req dto.ProcessAnswerRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.qualificationService.ProcessAnswer(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Answer recorded", res))
}

func (c *qualificationController) Recommendations(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	language := ctx.Query("language")
	limit, _ := strconv.Atoi(ctx.Query("limit"))

	res, err := c.qualificationService.GetRecommendations(ctx.Context(), sessionId, language, limit)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Recommendations ready", res))
}

func (c *qualificationController) Clear(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	if err := c.qualificationService.ClearSession(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session cleared", nil))
}

func (c *qualificationController) Categories(ctx *fiber.Ctx) error {
	res, err := c.qualificationService.GetCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Available categories", res))
}
