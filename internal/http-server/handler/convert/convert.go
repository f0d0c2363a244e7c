// Package convert is the HTTP boundary of the upload-and-convert pipeline.
// Each handler walks one request through the same stages: validate the
// input, stage the upload if there is one, dispatch to exactly one
// conversion strategy, encode the result envelope, and release every staged
// file regardless of outcome.
package convert

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lairegodd/multitools/internal/domain"
	"github.com/lairegodd/multitools/internal/envelope"
	"github.com/lairegodd/multitools/internal/http-server/handler/convert/dto"
	"github.com/lairegodd/multitools/internal/staging"
	convert_uc "github.com/lairegodd/multitools/internal/usecase/convert"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"
)

const maxMemory = 10 << 20

// multipartOverhead is headroom for boundaries, part headers and form
// fields, so the whole-body cap never rejects a file that is itself within
// the upload ceiling. The ceiling on the file proper is enforced in staging.
const multipartOverhead = 16 << 10

type Handler struct {
	service       converterService
	staging       uploadStager
	validate      *validator.Validate
	maxUploadSize int64
	logger        *zlog.Zerolog
}

func NewHandler(service converterService, stager uploadStager, maxUploadSize int64, logger *zlog.Zerolog) *Handler {
	return &Handler{
		service:       service,
		staging:       stager,
		validate:      validator.New(),
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

func (h *Handler) ConvertDocxToPDF(w http.ResponseWriter, r *http.Request) {
	h.convertDocument(w, r, domain.DocxToPDF)
}

func (h *Handler) ConvertPDFToDocx(w http.ResponseWriter, r *http.Request) {
	h.convertDocument(w, r, domain.PDFToDocx)
}

func (h *Handler) convertDocument(w http.ResponseWriter, r *http.Request, direction domain.Direction) {
	up, ok := h.stageUpload(w, r)
	if !ok {
		return
	}
	defer h.staging.Release(up.Path)

	result, err := h.service.ConvertDocument(r.Context(), up, direction)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.DocumentResponse{
		Envelope: envelope.Encode(result.Data, result.MimeType, result.FileName),
	})
}

func (h *Handler) CompressImage(w http.ResponseWriter, r *http.Request) {
	up, ok := h.stageUpload(w, r)
	if !ok {
		return
	}
	defer h.staging.Release(up.Path)

	result, err := h.service.CompressImage(r.Context(), up)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.ImageResponse{
		Envelope:         envelope.Encode(result.Data, result.MimeType, result.FileName),
		OriginalSize:     result.OriginalSize,
		CompressedSize:   result.CompressedSize,
		CompressionRatio: result.CompressionRatio,
	})
}

func (h *Handler) GenerateQR(w http.ResponseWriter, r *http.Request) {
	var req dto.QRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "URL is required", "")
		return
	}

	result, err := h.service.GenerateQR(req.URL)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.QRResponse{
		Envelope:    envelope.Encode(result.Data, result.MimeType, result.FileName),
		OriginalURL: result.OriginalURL,
	})
}

func (h *Handler) ConvertAudio(w http.ResponseWriter, r *http.Request) {
	up, ok := h.stageUpload(w, r)
	if !ok {
		return
	}
	defer h.staging.Release(up.Path)

	targetFormat := r.FormValue("targetFormat")
	bitrate := r.FormValue("bitrate")

	result, err := h.service.TranscodeAudio(r.Context(), up, targetFormat, bitrate)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.AudioResponse{
		Envelope:     envelope.Encode(result.Data, result.MimeType, result.FileName),
		TargetFormat: string(result.TargetFormat),
		Bitrate:      result.Bitrate,
		Size:         result.Size,
	})
}

func (h *Handler) CalculateBMI(w http.ResponseWriter, r *http.Request) {
	var req dto.BMIRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Height and weight must be positive numbers", "")
		return
	}

	report, err := h.service.CalculateBMI(req.HeightCm, req.WeightKg)
	if err != nil {
		h.respondFailure(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto.BMIResponse{
		BMI:      report.BMI,
		Category: string(report.Category),
		Message:  report.Message,
		Ranges:   report.Ranges,
	})
}

// stageUpload validates that a multipart file is present and stages it.
// Nothing is staged when validation fails; the caller owns the release of
// a staged file.
func (h *Handler) stageUpload(w http.ResponseWriter, r *http.Request) (*domain.UploadedFile, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "File too large", "")
			return nil, false
		}
		h.logger.Warn().Err(err).Msg("Failed to parse multipart form")
		h.respondError(w, http.StatusBadRequest, "Invalid request format", "")
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "File is required", "")
		return nil, false
	}
	defer file.Close()

	up, err := h.staging.Stage(file, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		if errors.Is(err, staging.ErrFileTooLarge) {
			h.respondError(w, http.StatusRequestEntityTooLarge, "File too large", "")
			return nil, false
		}
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to stage upload")
		h.respondError(w, http.StatusInternalServerError, "Failed to process upload", "")
		return nil, false
	}

	return up, true
}

// respondFailure is the single translation point from strategy errors to
// HTTP responses: invalid input maps to 400 with its specific reason,
// everything else to a generic 500 with the diagnostic as optional detail.
func (h *Handler) respondFailure(w http.ResponseWriter, err error) {
	var invalid *convert_uc.InvalidInputError
	if errors.As(err, &invalid) {
		h.respondError(w, http.StatusBadRequest, invalid.Reason, "")
		return
	}

	var convErr *convert_uc.ConversionError
	if errors.As(err, &convErr) {
		h.respondError(w, http.StatusInternalServerError, "Conversion failed", convErr.Detail)
		return
	}

	h.logger.Error().Err(err).Msg("Unclassified conversion failure")
	h.respondError(w, http.StatusInternalServerError, "Conversion failed", "")
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message, details string) {
	h.respondJSON(w, status, dto.ErrorResponse{Error: message, Details: details})
}
