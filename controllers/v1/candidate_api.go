package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"recruiting-dashboard-backend/controllers"
	candidatehandler "recruiting-dashboard-backend/lib/candidate"
	filestorage "recruiting-dashboard-backend/lib/file-storage"
	"recruiting-dashboard-backend/middleware"
	apimodels "recruiting-dashboard-backend/models/api"
	candidateapimodels "recruiting-dashboard-backend/models/api/candidate"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("candidates", func(router fiber.Router) {
		router.Use(middleware.StaffRequired())
		router.Put("list", controller.list)
		router.Put("export", controller.export)
		router.Post("", controller.create)
		router.Get(":id", controller.getByID)
		router.Put(":id/status", controller.updateStatus)
		router.Post(":id/resume", controller.uploadResume)
		router.Get(":id/resume", controller.downloadResume)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Candidate list
// @Tags Candidates
// @Description Candidate list with filter and pagination
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	 candidateapimodels.CandidateFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/list [put]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := candidatehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Candidate list. Export to Excel
// @Tags Candidates
// @Description Candidate list. Export to Excel
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	candidateapimodels.CandidateFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/export [put]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.Limit = 1000
	data, err := candidatehandler.Instance.ExportToXls(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate export failed")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Add candidate
// @Tags Candidates
// @Description Add candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	body body	candidateapimodels.CandidateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates [post]
func (c *candidateApiController) create(ctx *fiber.Ctx) error {
	var payload candidateapimodels.CandidateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := candidatehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate details
// @Tags Candidates
// @Description Candidate details
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/{id} [get]
func (c *candidateApiController) getByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	view, err := candidatehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate fetch failed")
	}
	if view == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("candidate not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Change candidate status
// @Tags Candidates
// @Description Change candidate status
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Param	body body	candidateapimodels.StatusUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/{id}/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	var payload candidateapimodels.StatusUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := candidatehandler.Instance.UpdateStatus(id, payload.Status); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate status update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete candidate
// @Tags Candidates
// @Description Delete candidate
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/{id} [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	if err := candidatehandler.Instance.Delete(id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "candidate delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload candidate resume
// @Tags Candidates
// @Description Upload candidate resume
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Param	file	formData	file	true	"resume file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/{id}/resume [post]
func (c *candidateApiController) uploadResume(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("resume file is not set"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume read failed")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume read failed")
	}
	if err := filestorage.Instance.UploadResume(ctx.Context(), id, body, fileHeader.Filename); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download candidate resume
// @Tags Candidates
// @Description Download candidate resume
// @Param   Authorization		header	string	true	"Authorization token"
// @Param	id	path	string	true	"candidate id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/candidates/{id}/resume [get]
func (c *candidateApiController) downloadResume(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is not set"))
	}
	body, fileName, err := filestorage.Instance.GetResume(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "resume download failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(body)
}
