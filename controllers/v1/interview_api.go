package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	interviewhandler "recruiting-dashboard-backend/lib/interview"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
	interviewapimodels "recruiting-dashboard-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
}

func InitInterviewApiRouters(app *fiber.App) {
	controller := interviewApiController{}
	app.Route("interviews", func(router fiber.Router) {
		router.Use(middleware.StaffRequired())
		router.Get("upcoming", controller.upcoming)
		router.Get("candidate/:id", controller.byCandidate)
		router.Post("", controller.schedule)
		router.Put(":id/cancel", controller.cancel)
	})
}

// @Summary Upcoming interviews
// @Tags Interviews
// @Description Upcoming interviews, soonest first
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interviews/upcoming [get]
func (c *interviewApiController) upcoming(ctx *fiber.Ctx) error {
	list, err := interviewhandler.Instance.ListUpcoming()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Candidate interviews
// @Tags Interviews
// @Description All interviews of one candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interviews/candidate/{id} [get]
func (c *interviewApiController) byCandidate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	list, err := interviewhandler.Instance.ListByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Schedule interview
// @Tags Interviews
// @Description Schedule interview and send the invite email
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	interviewapimodels.ScheduleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interviews [post]
func (c *interviewApiController) schedule(ctx *fiber.Ctx) error {
	var payload interviewapimodels.ScheduleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := interviewhandler.Instance.Schedule(middleware.GetUserID(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview scheduling failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Cancel interview
// @Tags Interviews
// @Description Cancel a scheduled interview
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"interview id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/interviews/{id}/cancel [put]
func (c *interviewApiController) cancel(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("interview id is not set"))
	}
	if err := interviewhandler.Instance.Cancel(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview cancel failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
