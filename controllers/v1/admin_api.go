package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	authhandler "recruiting-dashboard-backend/lib/auth"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
	authapimodels "recruiting-dashboard-backend/models/api/auth"
)

type adminApiController struct {
	controllers.BaseAPIController
}

func InitAdminApiRouters(app *fiber.App) {
	controller := adminApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AdminRequired())
		router.Post("", controller.createUser)
	})
}

// @Summary Add dashboard user
// @Tags Administration
// @Description Add a dashboard user with one of the fixed roles
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	authapimodels.CreateUserRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/users [post]
func (c *adminApiController) createUser(ctx *fiber.Ctx) error {
	var payload authapimodels.CreateUserRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := authhandler.Instance.CreateUser(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "user create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}
