package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"unicode/utf8"

	apperrors "github.com/nijaru/yt-brief/errors"
	"github.com/nijaru/yt-brief/middleware"
	"github.com/nijaru/yt-brief/prompt"
	"github.com/nijaru/yt-brief/summarizer"
	"github.com/nijaru/yt-brief/validation"
	"github.com/nijaru/yt-brief/youtube"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// minMetadataLength is the threshold, in characters, below which scraped
// metadata is considered too thin to summarize from.
const minMetadataLength = 100

const warningNoTranscript = "No transcript was found for this video; the summary is based on limited information."

type SummarizeRequest struct {
	YouTubeURL string `json:"youtube_url"`
	Language   string `json:"language"`
	Style      string `json:"style"`
}

type SummarizeResponse struct {
	Summary          string `json:"summary"`
	IsTranscript     bool   `json:"is_transcript"`
	HasMinimalInfo   bool   `json:"has_minimal_info"`
	TranscriptSource string `json:"transcript_source,omitempty"`
	Warning          string `json:"warning,omitempty"`
	WarningCode      string `json:"warning_code,omitempty"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	ErrorType string `json:"error_type"`
	Details   string `json:"details,omitempty"`
}

// TranscriptFetcher is implemented by youtube.Client.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID, preferredLang string) (string, error)
}

// MetadataScraper is implemented by youtube.Scraper.
type MetadataScraper interface {
	FetchMetadata(ctx context.Context, videoID string) (*youtube.Metadata, error)
}

// SummarizeHandler sequences identifier extraction, transcript fetch,
// metadata fallback, prompt assembly, and generation for one request.
type SummarizeHandler struct {
	transcripts TranscriptFetcher
	scraper     MetadataScraper
	summarizer  summarizer.Service
}

func NewSummarizeHandler(transcripts TranscriptFetcher, scraper MetadataScraper, svc summarizer.Service) *SummarizeHandler {
	return &SummarizeHandler{
		transcripts: transcripts,
		scraper:     scraper,
		summarizer:  svc,
	}
}

func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	const op = "SummarizeHandler.Summarize"
	logger := middleware.GetLogger(r.Context())

	if r.Method != http.MethodPost {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error:     "Method not allowed",
			ErrorCode: apperrors.CodeGeneralError,
			ErrorType: "general_error",
		})
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithError(err).Warn("Invalid request body")
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:     "Invalid JSON body",
			ErrorCode: apperrors.CodeGeneralError,
			ErrorType: "general_error",
		})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.Style == "" {
		req.Style = prompt.StyleStandard
	}

	if err := validation.ValidateURL(req.YouTubeURL); err != nil {
		logger.WithError(err).WithField("url", req.YouTubeURL).Warn("URL validation failed")
		respondError(w, r, apperrors.InvalidURL(op, err))
		return
	}

	videoID, err := youtube.ExtractVideoID(req.YouTubeURL)
	if err != nil {
		logger.WithError(err).WithField("url", req.YouTubeURL).Warn("Video ID extraction failed")
		respondError(w, r, apperrors.InvalidURL(op, err))
		return
	}

	logger = logger.WithField("video_id", videoID)
	ctx := r.Context()

	transcript, err := h.transcripts.FetchTranscript(ctx, videoID, req.Language)
	switch {
	case err == nil && transcript != "":
		summary, sumErr := h.buildAndSummarize(ctx, prompt.Request{
			Text:         transcript,
			VideoID:      videoID,
			Language:     req.Language,
			Style:        req.Style,
			IsTranscript: true,
		})
		if sumErr != nil {
			respondError(w, r, summarizerError(op, sumErr))
			return
		}
		respondJSON(w, http.StatusOK, SummarizeResponse{
			Summary:          summary,
			IsTranscript:     true,
			HasMinimalInfo:   false,
			TranscriptSource: "direct",
		})

	case errors.Is(err, youtube.ErrVideoUnavailable):
		respondError(w, r, apperrors.VideoUnavailable(op, err))

	default:
		// No transcript is the ordinary degraded case, not a failure.
		logger.Info("No transcript available, falling back to metadata")
		h.summarizeFromMetadata(w, r, videoID, req)
	}
}

// summarizeFromMetadata handles the fallback chain once no transcript
// exists: scrape the watch page, summarize from metadata if there is enough
// of it, otherwise produce the minimal-info summary.
func (h *SummarizeHandler) summarizeFromMetadata(w http.ResponseWriter, r *http.Request, videoID string, req SummarizeRequest) {
	const op = "SummarizeHandler.summarizeFromMetadata"
	logger := middleware.GetLogger(r.Context()).WithField("video_id", videoID)
	ctx := r.Context()

	md, err := h.scraper.FetchMetadata(ctx, videoID)
	if err != nil {
		switch {
		case errors.Is(err, youtube.ErrNetwork):
			respondError(w, r, apperrors.Network(op, err))
		case errors.Is(err, youtube.ErrVideoUnavailable):
			respondError(w, r, apperrors.VideoUnavailable(op, err))
		default:
			// Last resort: explain the absence of content instead of failing.
			logger.WithError(err).Warn("Metadata scrape failed, using minimal-info prompt")
			h.respondMinimal(w, r, videoID, req, true)
		}
		return
	}

	metadataText := md.Text()
	if utf8.RuneCountInString(metadataText) <= minMetadataLength {
		h.respondMinimal(w, r, videoID, req, false)
		return
	}

	summary, sumErr := h.buildAndSummarize(ctx, prompt.Request{
		Text:         metadataText,
		VideoID:      videoID,
		Language:     req.Language,
		Style:        req.Style,
		IsTranscript: false,
	})
	if sumErr != nil {
		respondError(w, r, summarizerError(op, sumErr))
		return
	}
	respondJSON(w, http.StatusOK, SummarizeResponse{
		Summary:        summary,
		IsTranscript:   false,
		HasMinimalInfo: false,
		Warning:        warningNoTranscript,
		WarningCode:    apperrors.CodeNoTranscript,
	})
}

// respondMinimal runs the minimal-info prompt (text is absent) and responds
// with has_minimal_info set. On the last-resort path, a further failure is
// no longer a classified Gemini error but a general one.
func (h *SummarizeHandler) respondMinimal(w http.ResponseWriter, r *http.Request, videoID string, req SummarizeRequest, lastResort bool) {
	const op = "SummarizeHandler.respondMinimal"
	summary, sumErr := h.buildAndSummarize(r.Context(), prompt.Request{
		VideoID:      videoID,
		Language:     req.Language,
		Style:        req.Style,
		IsTranscript: false,
	})
	if sumErr != nil {
		if lastResort {
			respondError(w, r, apperrors.General(op, sumErr))
		} else {
			respondError(w, r, summarizerError(op, sumErr))
		}
		return
	}
	respondJSON(w, http.StatusOK, SummarizeResponse{
		Summary:        summary,
		IsTranscript:   false,
		HasMinimalInfo: true,
		Warning:        warningNoTranscript,
		WarningCode:    apperrors.CodeNoTranscript,
	})
}

func (h *SummarizeHandler) buildAndSummarize(ctx context.Context, req prompt.Request) (string, error) {
	p, err := prompt.Build(req)
	if err != nil {
		return "", err
	}
	return h.summarizer.Summarize(ctx, p)
}

// summarizerError maps a generation failure onto the error-code table.
func summarizerError(op string, err error) *apperrors.AppError {
	var genErr *summarizer.GenerationError
	if errors.As(err, &genErr) {
		return apperrors.GeminiAPI(op, genErr.Unwrap(), genErr.Message)
	}
	return apperrors.General(op, err)
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

func respondError(w http.ResponseWriter, r *http.Request, appErr *apperrors.AppError) {
	logger := middleware.GetLogger(r.Context()).WithFields(logrus.Fields{
		"status":     appErr.Code,
		"error_code": appErr.ErrorCode,
		"op":         appErr.Op,
	})
	if appErr.Code >= 500 {
		logger.WithError(appErr).Error("Request failed")
	} else {
		logger.WithError(appErr).Warn("Request rejected")
	}

	respondJSON(w, appErr.Code, ErrorResponse{
		Error:     appErr.Message,
		ErrorCode: appErr.ErrorCode,
		ErrorType: appErr.ErrorType,
		Details:   appErr.Details(),
	})
}

func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error:     "Method not allowed",
			ErrorCode: apperrors.CodeGeneralError,
			ErrorType: "general_error",
		})
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeIndex serves the static single-page UI.
func ServeIndex(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "./static/index.html")
}
