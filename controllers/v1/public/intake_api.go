package publicapi

import (
	"io"

	"work-forward-backend/config"
	"work-forward-backend/controllers"
	"work-forward-backend/lib/intake"
	"work-forward-backend/models"
	apimodels "work-forward-backend/models/api"
	intakeapimodels "work-forward-backend/models/api/intake"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type publicIntakeApiController struct {
	controllers.BaseAPIController
}

func InitPublicIntakeApiRouters(app *fiber.App) {
	controller := publicIntakeApiController{}
	app.Route("intake", func(router fiber.Router) {
		router.Post("", controller.submit)
	})
}

// @Summary Intake form submission
// @Tags Intake
// @Description Handles the public opportunity center sign up form
// @Accept mpfd
// @Param   resume	formData	file 	false 	"resume file"
// @Success 303
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/public/intake [post]
func (c *publicIntakeApiController) submit(ctx *fiber.Ctx) error {
	var form intakeapimodels.SubmissionForm
	if err := c.BodyParser(ctx, &form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	resumeName, resume, err := readResume(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	_, err = intake.Instance.Submit(ctx.UserContext(), form, resumeName, resume)
	if err != nil {
		if errors.Is(err, models.ErrValidation) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		logger := log.WithField("form", form.Email)
		return c.SendError(ctx, logger, err, "Submission could not be handled")
	}
	return ctx.Redirect(config.Conf.App.RedirectPath, fiber.StatusSeeOther)
}

// readResume returns the optional resume file part. A missing part is
// not an error, only an unreadable one is.
func readResume(ctx *fiber.Ctx) (name string, body []byte, err error) {
	file, err := ctx.FormFile("resume")
	if err != nil {
		return "", nil, nil
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("resume file part could not be opened")
		return "", nil, err
	}
	defer buffer.Close()
	body, err = io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("resume file part could not be read")
		return "", nil, err
	}
	return file.Filename, body, nil
}
