package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oncoscreen/oncoscreen-backend/internal/content"
)

// ─── GET /api/cancer-info ─────────────────────────────────────────────────────

// infoSummary is the list-view shape; the full article (overview, symptoms,
// sources) comes from the detail endpoint.
type infoSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Prevalence string `json:"prevalence"`
}

func (s *Server) handleListCancerInfo(w http.ResponseWriter, r *http.Request) {
	infos := content.All()
	summaries := make([]infoSummary, 0, len(infos))
	for _, info := range infos {
		summaries = append(summaries, infoSummary{
			ID:         info.ID,
			Name:       info.Name,
			Category:   info.Category,
			Prevalence: info.Prevalence,
		})
	}
	respond(w, http.StatusOK, map[string]any{"cancer_types": summaries})
}

// ─── GET /api/cancer-info/{infoID} ────────────────────────────────────────────

func (s *Server) handleGetCancerInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := content.Get(chi.URLParam(r, "infoID"))
	if !ok {
		respondErr(w, http.StatusNotFound, "unknown cancer type")
		return
	}
	respond(w, http.StatusOK, info)
}
