package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the dashboard analytics endpoints.
type Handler struct {
	service *Service
	monitor *AlertMonitor
	logger  *zap.Logger
}

// NewHandler creates a dashboard handler.
func NewHandler(service *Service, monitor *AlertMonitor, logger *zap.Logger) *Handler {
	return &Handler{service: service, monitor: monitor, logger: logger}
}

// RegisterRoutes mounts the dashboard endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/metrics", h.Metrics)
	r.GET("/partners", h.Partners)
	r.GET("/partners/:id", h.Partner)
	r.GET("/partners/:id/report", h.CommercialReport)
	r.GET("/partners/:id/report.pdf", h.CommercialReportPDF)
	r.GET("/customers", h.Customers)
	r.GET("/revenue", h.Revenue)
	r.GET("/revenue/export", h.RevenueExport)
	r.GET("/reports", h.CommercialReports)
	r.GET("/industries", h.Industries)
	r.GET("/services", h.Services)
	r.GET("/alerts", h.Alerts)
}

func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Metrics())
}

func (h *Handler) Partners(c *gin.Context) {
	filter := PartnerFilter{
		Region: Region(c.Query("region")),
		Type:   PartnerType(c.Query("type")),
		Status: PartnerStatus(c.Query("status")),
	}
	c.JSON(http.StatusOK, h.service.Partners(filter))
}

func (h *Handler) Partner(c *gin.Context) {
	partner, err := h.service.PartnerByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPartnerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, partner)
}

func (h *Handler) CommercialReport(c *gin.Context) {
	report, err := h.service.CommercialReport(c.Param("id"), c.Query("month"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) CommercialReportPDF(c *gin.Context) {
	report, err := h.service.CommercialReport(c.Param("id"), c.Query("month"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="commercial-report-`+report.PartnerID+`.pdf"`)
	if err := WriteCommercialReportPDF(report, c.Writer); err != nil {
		h.logger.Error("commercial report PDF export failed", zap.Error(err))
	}
}

func (h *Handler) CommercialReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.CommercialReports(c.Query("month")))
}

func (h *Handler) Customers(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Customers(c.Query("partner")))
}

func (h *Handler) Revenue(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.RevenueHistory())
}

func (h *Handler) RevenueExport(c *gin.Context) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="revenue-history.xlsx"`)
	if err := WriteRevenueWorkbook(h.service.RevenueHistory(), c.Writer); err != nil {
		h.logger.Error("revenue export failed", zap.Error(err))
	}
}

func (h *Handler) Industries(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Industries())
}

func (h *Handler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ServiceDistributions())
}

func (h *Handler) Alerts(c *gin.Context) {
	alerts := h.monitor.Alerts()
	if alerts == nil {
		alerts = []UsageAlert{}
	}
	c.JSON(http.StatusOK, alerts)
}
