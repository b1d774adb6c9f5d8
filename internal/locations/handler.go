package locations

import (
	"fmt"
	"net/http"

	"driveflex_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// SuggestRequest represents the query parameters from the frontend.
type SuggestRequest struct {
	Query string `form:"q" binding:"required"`
}

// SuggestResponse is the payload consumed by every location picker.
type SuggestResponse struct {
	Items []Option `json:"items"`
	Hint  string   `json:"hint,omitempty"`
}

// Handler exposes the location suggestion endpoints.
type Handler struct {
	online  Resolver
	offline Resolver
}

// NewHandler wires the handler over both resolution strategies.
func NewHandler(online, offline Resolver) *Handler {
	return &Handler{online: online, offline: offline}
}

// Suggest handles GET /api/v1/locations/suggest?q=...
func (h *Handler) Suggest(c *gin.Context) {
	h.respond(c, h.online)
}

// OfflineSuggest handles GET /api/v1/locations/offline-suggest?q=...
// It queries the gazetteer directly and never touches the provider.
func (h *Handler) OfflineSuggest(c *gin.Context) {
	h.respond(c, h.offline)
}

func (h *Handler) respond(c *gin.Context, resolver Resolver) {
	var req SuggestRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "query 'q' is required", nil)
		return
	}

	options, err := resolver.Suggest(c.Request.Context(), req.Query)
	if err != nil {
		// The pipeline degrades provider failures internally; any error here
		// is unexpected, but the contract stays "fewer or zero suggestions".
		options = nil
	}
	if options == nil {
		// The items field is always a JSON array, never null.
		options = []Option{}
	}

	httpkit.OK(c, SuggestResponse{
		Items: options,
		Hint:  suggestHint(req.Query, options, resolver.MinChars()),
	})
}

// suggestHint gives the UI a context-sensitive empty-state message.
func suggestHint(query string, options []Option, minChars int) string {
	if len(options) > 0 {
		return ""
	}
	if len(normalizeQuery(query)) < minChars {
		return fmt.Sprintf("Type at least %d characters (e.g., Hou)", minChars)
	}
	return "No locations found. Try ZIP (e.g., 77001)."
}
