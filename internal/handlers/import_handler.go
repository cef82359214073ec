package handlers

import (
	stderrors "errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"municipal-budget/internal/dto"
	"municipal-budget/internal/errors"
	"municipal-budget/internal/services"

	"github.com/labstack/echo/v4"
)

// csvFormField is the multipart field carrying the uploaded file.
const csvFormField = "file"

var errNoFile = stderrors.New("no csv file in request")

// ImportHandler accepts CSV uploads
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{importService: importService}
}

// ImportCSV writes every acceptable row of the uploaded CSV to the store
// @Summary Import budget CSV
// @Description Multipart field "file", or a raw text/csv body. Header row must name ward, year, category and amount.
// @Tags Budget
// @Accept multipart/form-data
// @Accept text/csv
// @Produce json
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - No CSV file provided / IMPORT_002 - No valid budget data found"
// @Failure 413 {object} errors.ErrorResponse "IMPORT_005 - CSV file exceeds the upload size limit"
// @Failure 500 {object} errors.ErrorResponse "IMPORT_003 - Failed to import budget data"
// @Router /api/v1/budget/import [post]
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	content, err := readCSV(c)
	if err != nil {
		var httpErr *echo.HTTPError
		switch {
		case stderrors.Is(err, errNoFile):
			return SendError(c, errors.ImportNoFile)
		case stderrors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge:
			return SendError(c, errors.ImportFileTooLarge)
		default:
			return SendError(c, errors.ImportUnreadableFile, errors.WithDetails(err.Error()))
		}
	}

	imported, err := h.importService.ImportCSV(c.Request().Context(), content)
	if err != nil {
		return SendServiceError(c, err, errors.ImportWriteFailed)
	}

	return c.JSON(http.StatusOK, dto.ImportResponse{
		Message:  fmt.Sprintf("Imported %d records successfully", imported),
		Imported: imported,
	})
}

func readCSV(c echo.Context) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))

	switch mediaType {
	case "text/csv", echo.MIMETextPlain:
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return "", err
		}
		if len(body) == 0 {
			return "", errNoFile
		}
		return string(body), nil

	case echo.MIMEMultipartForm:
		fileHeader, err := c.FormFile(csvFormField)
		if err != nil {
			if stderrors.Is(err, http.ErrMissingFile) {
				return "", errNoFile
			}
			return "", err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return "", fmt.Errorf("open upload: %w", err)
		}
		defer file.Close()

		body, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read upload: %w", err)
		}
		return string(body), nil

	default:
		return "", errNoFile
	}
}
