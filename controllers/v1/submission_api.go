package apiv1

import (
	"fmt"

	"work-forward-backend/controllers"
	pdfexport "work-forward-backend/lib/export/pdf"
	xlsexport "work-forward-backend/lib/export/xls"
	filestorage "work-forward-backend/lib/file-storage"
	"work-forward-backend/lib/intake"
	apimodels "work-forward-backend/models/api"
	intakeapimodels "work-forward-backend/models/api/intake"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type submissionApiController struct {
	controllers.BaseAPIController
}

// Admin surface over stored submissions. Access gating lives in the
// deployment layer in front of this service.
func InitSubmissionApiRouters(app *fiber.App) {
	controller := submissionApiController{}
	app.Route("submissions", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("/export/xlsx", controller.exportXlsx)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getByID)
			idRoute.Get("/export/pdf", controller.exportPdf)
			idRoute.Get("/resume", controller.downloadResume)
		})
	})
}

// @Summary Submission list
// @Tags Submissions
// @Description Paged list of stored submissions, newest first
// @Param   page		query	int 	false 	"page"
// @Param   limit		query	int 	false 	"records per page"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]intakeapimodels.SubmissionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions [get]
func (c *submissionApiController) list(ctx *fiber.Ctx) error {
	var pg apimodels.Pagination
	if err := ctx.QueryParser(&pg); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := intake.Instance.List(pg)
	if err != nil {
		return c.SendError(ctx, log.WithField("page", pg.Page), err, "Submission list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Submission details
// @Tags Submissions
// @Description Single submission by id
// @Param   id          		path    string  true         "submission id"
// @Success 200 {object} apimodels.Response{data=intakeapimodels.SubmissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/{id} [get]
func (c *submissionApiController) getByID(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := intake.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, log.WithField("submission_id", id), err, "Submission lookup failed")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("submission not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(intakeapimodels.ToSubmissionView(*rec)))
}

// @Summary Submission export
// @Tags Submissions
// @Description All stored submissions as an xlsx workbook
// @Success 200
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/export/xlsx [get]
func (c *submissionApiController) exportXlsx(ctx *fiber.Ctx) error {
	list, err := intake.Instance.ListAll()
	if err != nil {
		return c.SendError(ctx, log.WithField("export", "xlsx"), err, "Submission export failed")
	}
	buf, err := xlsexport.Instance.ExportSubmissionList(list)
	if err != nil {
		return c.SendError(ctx, log.WithField("export", "xlsx"), err, "Submission export failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="submissions.xlsx"`)
	return ctx.Status(fiber.StatusOK).SendStream(buf)
}

// @Summary Submission summary pdf
// @Tags Submissions
// @Description Printable one-page summary of a submission
// @Param   id          		path    string  true         "submission id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/{id}/export/pdf [get]
func (c *submissionApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := intake.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, log.WithField("submission_id", id), err, "Submission lookup failed")
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("submission not found"))
	}
	body, err := pdfexport.GenerateSubmissionSummary(*rec)
	if err != nil {
		return c.SendError(ctx, log.WithField("submission_id", id), err, "Submission pdf generation failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="submission-%s.pdf"`, id))
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Resume download
// @Tags Submissions
// @Description Stored resume file of a submission
// @Param   id          		path    string  true         "submission id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/admin/submissions/{id}/resume [get]
func (c *submissionApiController) downloadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := intake.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, log.WithField("submission_id", id), err, "Submission lookup failed")
	}
	if rec == nil || rec.ResumeKey == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("resume not found"))
	}
	body, err := filestorage.Instance.GetResume(ctx.UserContext(), rec.ResumeKey)
	if err != nil {
		return c.SendError(ctx, log.WithField("submission_id", id), err, "Resume download failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, rec.ResumeName))
	return ctx.Status(fiber.StatusOK).Send(body)
}
