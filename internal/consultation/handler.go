package consultation

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"medical-report-assistant/internal/upload"
)

const maxJSONBody = 1 << 20

type Handler struct {
	svc       Service
	uploadDir string
	maxUpload int64
}

func NewHandler(svc Service, uploadDir string, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, uploadDir: uploadDir, maxUpload: maxUploadBytes}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Service is running",
	})
}

func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		// A part without a filename is parsed as a plain value.
		if _, sent := r.MultipartForm.Value["file"]; sent {
			writeError(w, http.StatusBadRequest, "Invalid or no file selected")
			return
		}
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" || !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		writeError(w, http.StatusBadRequest, "Invalid or no file selected")
		return
	}

	lang := r.FormValue("language")
	if lang == "" {
		lang = DefaultLanguage
	}

	path, cleanup, err := upload.Save(h.uploadDir, file)
	if err != nil {
		log.WithError(err).Error("failed to store upload")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer cleanup()

	result, err := h.svc.AnalyzeReportFile(r.Context(), path, lang)
	if err != nil {
		log.WithError(err).Error("analysis error")
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "No data provided in request")
		return
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		log.Warn("no JSON data received in request")
		writeError(w, http.StatusBadRequest, "No data provided in request")
		return
	}

	var req RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	rec, err := h.svc.Recommend(r.Context(), req.Symptoms, req.Language)
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			msg = "An unexpected error occurred: " + msg
		}
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/health", h.Health)
	r.Post("/analyze", h.Analyze)
	r.Options("/analyze", h.Preflight)
	r.Post("/recommend", h.Recommend)
	r.Options("/recommend", h.Preflight)
}
