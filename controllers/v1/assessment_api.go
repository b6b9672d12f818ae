package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	assessmenthandler "recruiting-dashboard-backend/lib/assessment"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
	assessmentapimodels "recruiting-dashboard-backend/models/api/assessment"
)

type assessmentApiController struct {
	controllers.BaseAPIController
}

func InitAssessmentApiRouters(app *fiber.App) {
	controller := assessmentApiController{}
	app.Route("assessments", func(router fiber.Router) {
		router.Use(middleware.StaffRequired())
		router.Get("", controller.list)
		router.Post("results", controller.recordResult)
		router.Get("results/candidate/:id", controller.resultsByCandidate)
	})
}

// @Summary Assessment list
// @Tags Assessments
// @Description Assessment list in display order
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.AssessmentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assessments [get]
func (c *assessmentApiController) list(ctx *fiber.Ctx) error {
	list, err := assessmenthandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "assessment list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Record assessment result
// @Tags Assessments
// @Description Record a candidate's assessment result; omit score for an ungraded submission
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	assessmentapimodels.RecordResultRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assessments/results [post]
func (c *assessmentApiController) recordResult(ctx *fiber.Ctx) error {
	var payload assessmentapimodels.RecordResultRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := assessmenthandler.Instance.RecordResult(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "result recording failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate assessment results
// @Tags Assessments
// @Description All assessment results of one candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=[]assessmentapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/assessments/results/candidate/{id} [get]
func (c *assessmentApiController) resultsByCandidate(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	list, err := assessmenthandler.Instance.ResultsByCandidate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "result list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
