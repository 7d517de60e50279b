package handlers

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rashigupta12/recuritment-sub001/internal/models"
	"github.com/rashigupta12/recuritment-sub001/internal/services"
)

// writeError emits the shared failure envelope. Raw detail is attached only
// outside production.
func writeError(c *fiber.Ctx, err error, production bool) error {
	resp := models.ErrorResponse{
		Error:     services.UserMessage(err),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if !production {
		resp.Details = services.Detail(err)
	}

	return c.Status(services.HTTPStatus(err)).JSON(resp)
}

// readUpload pulls the multipart document out of the request and enforces
// the size cap before any bytes are parsed.
func readUpload(c *fiber.Ctx, maxFileSize int64) (*services.Input, error) {
	file, err := c.FormFile("file")
	if err != nil {
		return nil, services.NewPipelineError(
			services.ErrMissingInput,
			"No file provided.",
			err,
		)
	}

	fileName := c.FormValue("fileName")
	if fileName == "" {
		return nil, services.NewPipelineError(
			services.ErrMissingInput,
			"No file name provided.",
			fmt.Errorf("fileName form field is empty"),
		)
	}

	if file.Size > maxFileSize {
		return nil, services.NewPipelineError(
			services.ErrFileTooLarge,
			fmt.Sprintf("File too large. Maximum size is %dMB", maxFileSize/(1024*1024)),
			fmt.Errorf("upload is %d bytes, cap is %d", file.Size, maxFileSize),
		)
	}

	src, err := file.Open()
	if err != nil {
		return nil, services.NewPipelineError(
			services.ErrMissingInput,
			"Could not read the uploaded file.",
			err,
		)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, services.NewPipelineError(
			services.ErrMissingInput,
			"Could not read the uploaded file.",
			err,
		)
	}

	return &services.Input{
		FileName:    fileName,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
		JobTitle:    c.FormValue("jobTitle"),
	}, nil
}
