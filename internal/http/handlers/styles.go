package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"archviz/internal/domain"
)

type styleEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	DNA  string `json:"dna"`
	Tier string `json:"tier"`
	Mode string `json:"mode"`
}

type stylesResponse struct {
	Mode   string       `json:"mode"`
	Styles []styleEntry `json:"styles"`
}

// StylesList returns the static style catalog, optionally filtered by render
// mode (?mode=exterior|interior).
func (a *App) StylesList(w http.ResponseWriter, r *http.Request) {
	titler := cases.Title(language.English)
	modeParam := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("mode")))

	var styles []domain.StyleDirective
	switch modeParam {
	case "", "ALL":
		styles = domain.StyleCatalog
		modeParam = "ALL"
	case string(domain.RenderModeExterior), string(domain.RenderModeInterior):
		styles = domain.StylesForMode(domain.RenderMode(modeParam))
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "unknown render mode")
		return
	}

	entries := make([]styleEntry, 0, len(styles))
	for _, s := range styles {
		entries = append(entries, styleEntry{
			ID:   s.ID,
			Name: s.Name,
			DNA:  s.DNA,
			Tier: string(s.Tier),
			Mode: titler.String(strings.ToLower(string(s.Mode))),
		})
	}

	a.json(w, http.StatusOK, stylesResponse{Mode: titler.String(strings.ToLower(modeParam)), Styles: entries})
}
