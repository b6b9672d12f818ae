package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	analyticshandler "recruiting-dashboard-backend/lib/analytics"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
)

type analyticsApiController struct {
	controllers.BaseAPIController
}

func InitAnalyticsApiRouters(app *fiber.App) {
	controller := analyticsApiController{}
	app.Route("analytics", func(router fiber.Router) {
		router.Use(middleware.StaffRequired())
		router.Get("kpis", controller.kpis)
		router.Get("funnel", controller.funnel)
		router.Get("assessments", controller.assessments)
		router.Get("trend", controller.trend)
		router.Get("status-summary", controller.statusSummary)
		router.Get("top-performers", controller.topPerformers)
		router.Get("dashboard", controller.dashboard)
		router.Get("export", controller.export)
		router.Get("report", controller.report)
	})
}

// @Summary Headline KPIs
// @Tags Analytics
// @Description Period-over-period headline metrics
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.KPI}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/kpis [get]
func (c *analyticsApiController) kpis(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.KPIs()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "kpi calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Conversion funnel
// @Tags Analytics
// @Description Conversion funnel with bottleneck detection
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.FunnelView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/funnel [get]
func (c *analyticsApiController) funnel(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.Funnel()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "funnel calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Assessment performance
// @Tags Analytics
// @Description Submission count and average score per assessment
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.AssessmentPerformance}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/assessments [get]
func (c *analyticsApiController) assessments(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.AssessmentPerformance()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "assessment performance calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Hiring trend
// @Tags Analytics
// @Description 12-month hiring trend, oldest month first
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.HiringTrend}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/trend [get]
func (c *analyticsApiController) trend(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.HiringTrend()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "trend calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Pipeline status summary
// @Tags Analytics
// @Description Hired / rejected / in-progress counts
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.StatusSummary}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/status-summary [get]
func (c *analyticsApiController) statusSummary(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.StatusSummary()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "status summary calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Top performers
// @Tags Analytics
// @Description Top five candidates by average assessment score
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]analyticsapimodels.TopPerformer}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/top-performers [get]
func (c *analyticsApiController) topPerformers(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.TopPerformers()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "top performer calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Full dashboard
// @Tags Analytics
// @Description All analytics widgets in one payload
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=analyticsapimodels.DashboardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/dashboard [get]
func (c *analyticsApiController) dashboard(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "dashboard calculation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(data))
}

// @Summary Analytics report. Export to Excel
// @Tags Analytics
// @Description Analytics report. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/export [get]
func (c *analyticsApiController) export(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.ExportToXls()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "analytics export failed")
	}
	fileName := fmt.Sprintf("analytics-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Analytics report. Export to PDF
// @Tags Analytics
// @Description One-page analytics summary as PDF
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/analytics/report [get]
func (c *analyticsApiController) report(ctx *fiber.Ctx) error {
	data, err := analyticshandler.Instance.ReportPDF()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "analytics report failed")
	}
	fileName := fmt.Sprintf("analytics-%v.pdf", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}
