package adminControllers

import (
	"bytes"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nordixdotma/ayounioptic/services"
	"github.com/nordixdotma/ayounioptic/upstream"
)

const maxImageSize = 5 * 1024 * 1024

var (
	errImageType = errors.New("Veuillez sélectionner un fichier image valide.")
	errImageSize = errors.New("L'image ne doit pas dépasser 5MB.")
)

// Handler is the back-office surface: entity CRUD proxied through the
// admin service, plus refresh, export and the local order history.
type Handler struct {
	service  *services.AdminService
	checkout *services.CheckoutService
	log      *logrus.Logger
}

func NewHandler(service *services.AdminService, checkout *services.CheckoutService, log *logrus.Logger) *Handler {
	return &Handler{service: service, checkout: checkout, log: log}
}

// imageFormFile checks the UI's file rules — image MIME type, at most
// 5 MB — and buffers the upload. An invalid file never reaches the form.
func imageFormFile(fh *multipart.FileHeader) (*upstream.FormFile, error) {
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return nil, errImageType
	}
	if fh.Size > maxImageSize {
		return nil, errImageSize
	}
	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, err
	}
	return &upstream.FormFile{Name: fh.Filename, Content: &buf}, nil
}

// respondError maps an error to a response: upstream failures answer with
// the operation's French failure message, anything else carries its own
// user-facing message.
func respondError(c *gin.Context, err error, failureMsg string) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		c.JSON(http.StatusBadGateway, gin.H{"error": failureMsg})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
