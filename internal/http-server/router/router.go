package router

import (
	"net/http"

	convert_h "github.com/lairegodd/multitools/internal/http-server/handler/convert"
	"github.com/lairegodd/multitools/internal/http-server/middleware"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	ConvertHandler *convert_h.Handler
}

func SetupRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		r.Route("/convert", func(r chi.Router) {
			r.Post("/docx-to-pdf", h.ConvertHandler.ConvertDocxToPDF)
			r.Post("/pdf-to-docx", h.ConvertHandler.ConvertPDFToDocx)
		})

		r.Post("/image/compress", h.ConvertHandler.CompressImage)
		r.Post("/url/qr", h.ConvertHandler.GenerateQR)
		r.Post("/audio/convert", h.ConvertHandler.ConvertAudio)
		r.Post("/calc/bmi", h.ConvertHandler.CalculateBMI)
	})

	return r
}
