package controller

import (
	"voicepad-be/internal/pkg/serverutils"
	"voicepad-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

type activityController struct {
	activityService service.IActivityService
}

func NewActivityController(activityService service.IActivityService) IActivityController {
	return &activityController{
		activityService: activityService,
	}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activities")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetAll)
}

func (c *activityController) GetAll(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.activityService.GetAll(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get activities", res))
}
