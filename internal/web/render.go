package web

import (
	"bytes"
	"net/http"
	"net/url"
	"slices"

	"github.com/pribylovaa/buy-and-sell/internal/models"
	"github.com/pribylovaa/buy-and-sell/pkg/log"
)

// render исполняет шаблон в буфер, чтобы ошибка шаблона не оставила
// клиенту половину страницы со статусом 200.
func (wb *Web) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := wb.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.From(r.Context()).Error("render failed", "template", name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (wb *Web) notFound(w http.ResponseWriter, r *http.Request) {
	wb.render(w, r, http.StatusNotFound, "404.html", nil)
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}

func hasCategory(offer *models.Offer, category string) bool {
	return offer != nil && slices.Contains(offer.Category, category)
}
