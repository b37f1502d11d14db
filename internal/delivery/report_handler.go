package delivery

import (
	"fmt"
	"net/http"

	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	msgReportSaved  = "PDF généré avec succès"
	msgReportFailed = "Erreur lors de la génération du PDF"
	mimePDF         = "application/pdf"
)

type ReportHandler struct {
	useCase usecase.ReportUseCase
	log     *logrus.Logger
}

func NewReportHandler(uc usecase.ReportUseCase, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ReportHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/download-products-pdf", h.DownloadProductsPDF)
}

// DownloadProductsPDF saves the product listing server side and confirms with
// plain text. Clients that accept application/pdf get the document instead.
func (h *ReportHandler) DownloadProductsPDF(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEPlain, mimePDF) == mimePDF {
		doc, contentType, err := h.useCase.RenderProductReport(c.Request.Context())
		if err != nil {
			h.log.Errorf("Failed to render product report: %v", err)
			_ = c.Error(err)
			FailResponse(c, http.StatusInternalServerError, msgReportFailed)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", usecase.ProductReportFilename))
		c.Data(http.StatusOK, contentType, doc)
		return
	}

	path, err := h.useCase.SaveProductReport(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to save product report: %v", err)
		_ = c.Error(err)
		FailResponse(c, http.StatusInternalServerError, msgReportFailed)
		return
	}
	h.log.Infof("Product report written to %s", path)
	c.String(http.StatusOK, msgReportSaved)
}
