package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	assessmenthandler "recruiting-dashboard-backend/lib/assessment"
	candidatehandler "recruiting-dashboard-backend/lib/candidate"
	interviewhandler "recruiting-dashboard-backend/lib/interview"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
)

// myApiController serves the candidate's own view of the pipeline: a
// candidate account only ever sees the record linked to its user id.
type myApiController struct {
	controllers.BaseAPIController
}

func InitMyApiRouters(app *fiber.App) {
	controller := myApiController{}
	app.Route("my", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("profile", controller.profile)
		router.Get("interviews", controller.interviews)
		router.Get("results", controller.results)
	})
}

// @Summary My application
// @Tags Candidate area
// @Description Pipeline record of the logged-in candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/my/profile [get]
func (c *myApiController) profile(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "profile fetch failed")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no application found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary My interviews
// @Tags Candidate area
// @Description Interviews of the logged-in candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]interviewapimodels.InterviewView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/my/interviews [get]
func (c *myApiController) interviews(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "profile fetch failed")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no application found"))
	}
	list, err := interviewhandler.Instance.ListByCandidate(view.ID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "interview list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary My assessment results
// @Tags Candidate area
// @Description Assessment results of the logged-in candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/my/results [get]
func (c *myApiController) results(ctx *fiber.Ctx) error {
	view, err := candidatehandler.Instance.GetByUserID(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "profile fetch failed")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("no application found"))
	}
	list, err := assessmenthandler.Instance.ResultsByCandidate(view.ID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "result list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
