package onboarding

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"cloudpulse/partner-portal/partner-portal-backend/internal/cloudflare"
)

// Handler exposes the onboarding workflow over HTTP.
type Handler struct {
	orchestrator *Orchestrator
	client       *cloudflare.Client
	logger       *zap.Logger
	upgrader     websocket.Upgrader
}

// NewHandler creates an onboarding handler.
func NewHandler(orchestrator *Orchestrator, client *cloudflare.Client, logger *zap.Logger) *Handler {
	return &Handler{
		orchestrator: orchestrator,
		client:       client,
		logger:       logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// The portal fronts this API behind the same origin.
				return true
			},
		},
	}
}

// RegisterRoutes mounts the onboarding endpoints.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Run)
	r.POST("/validate", h.Validate)
	r.POST("/validate-step", h.ValidateStep)
	r.GET("/accounts", h.Accounts)
	r.GET("/verify", h.VerifyCredentials)
	r.GET("/ws", h.Stream)
}

// Run executes a full onboarding workflow synchronously and returns the final
// progress record. On a step failure the partial progress is returned with
// the failing step's error.
func (h *Handler) Run(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding input: " + err.Error()})
		return
	}

	if result := ValidateInput(&input); !result.IsValid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "validation": result})
		return
	}

	progress, err := h.orchestrator.Onboard(c.Request.Context(), &input, nil)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "progress": progress})
		return
	}

	c.JSON(http.StatusOK, progress)
}

// Validate runs the pure business validators against an input without
// touching the network.
func (h *Handler) Validate(c *gin.Context) {
	var input Input
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding input: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, ValidateInput(&input))
}

// stepValidationRequest is the wizard's per-step validation payload.
type stepValidationRequest struct {
	Step    int           `json:"step"`
	Context WizardContext `json:"context"`
	Data    Input         `json:"data"`
}

// ValidateStep enforces the per-step required fields before the wizard
// advances.
func (h *Handler) ValidateStep(c *gin.Context) {
	var req stepValidationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid step validation request: " + err.Error()})
		return
	}

	fieldErrors := ValidateWizardStep(req.Step, req.Context, &req.Data)
	c.JSON(http.StatusOK, gin.H{
		"valid":       len(fieldErrors) == 0,
		"fieldErrors": fieldErrors,
	})
}

// Accounts lists the tenant's existing accounts for the existing-customer
// picker.
func (h *Handler) Accounts(c *gin.Context) {
	accounts, err := h.client.ListAccounts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// VerifyCredentials checks the configured credentials against the tenant
// listing endpoint.
func (h *Handler) VerifyCredentials(c *gin.Context) {
	tenants, err := h.client.ListTenants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "tenants": tenants})
}

// streamMessage is one frame on the onboarding progress socket.
type streamMessage struct {
	Type     string            `json:"type"` // progress, completed, error, invalid
	Progress *Progress         `json:"progress,omitempty"`
	Error    string            `json:"error,omitempty"`
	Errors   []string          `json:"errors,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// Stream upgrades to a WebSocket, reads one onboarding input, and emits every
// progress snapshot in step order followed by a terminal frame. Snapshot
// writes happen from inside the orchestrator's progress callback, so frame
// order matches transition order exactly.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	var input Input
	if err := conn.ReadJSON(&input); err != nil {
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: "invalid onboarding input"})
		return
	}

	if result := ValidateInput(&input); !result.IsValid {
		_ = conn.WriteJSON(streamMessage{Type: "invalid", Errors: result.Errors})
		return
	}

	progress, err := h.orchestrator.Onboard(c.Request.Context(), &input, func(p *Progress) {
		if writeErr := conn.WriteJSON(streamMessage{Type: "progress", Progress: p}); writeErr != nil {
			h.logger.Warn("failed to write progress frame", zap.Error(writeErr))
		}
	})
	if err != nil {
		_ = conn.WriteJSON(streamMessage{Type: "error", Error: err.Error(), Progress: progress})
		return
	}

	_ = conn.WriteJSON(streamMessage{Type: "completed", Progress: progress})
}
