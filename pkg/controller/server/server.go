package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/brandlens/brandlens/pkg/domain/interfaces"
	"github.com/brandlens/brandlens/pkg/domain/model"
	"github.com/brandlens/brandlens/pkg/domain/types"
	"github.com/brandlens/brandlens/pkg/utils/errutil"
	"github.com/brandlens/brandlens/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, data)
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps domain sentinel errors to HTTP statuses. Unexpected
// errors are reported and hidden behind a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrScanNotFound), errors.Is(err, types.ErrIssueNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	case errors.Is(err, types.ErrTerminalScan), errors.Is(err, types.ErrTerminalIssue):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})

	default:
		errutil.HandleError(r.Context(), "request failed", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

type startScanRequest struct {
	WorkspaceID types.WorkspaceID `json:"workspaceId"`
}

type startScanResponse struct {
	ScanID types.ScanID     `json:"scanId"`
	Status types.ScanStatus `json:"status"`
}

type applyFixRequest struct {
	OptionID string `json:"optionId,omitempty"`
	Text     string `json:"text,omitempty"`
}

func New(uc interfaces.UseCase) *Server {
	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api/alignment", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			workspaceID := types.WorkspaceID(r.URL.Query().Get("workspace"))
			filter := model.IssueFilter{
				Module:   types.Module(r.URL.Query().Get("module")),
				Severity: types.Severity(r.URL.Query().Get("severity")),
			}
			if status := r.URL.Query().Get("status"); status != "" {
				filter.Statuses = []types.IssueStatus{types.IssueStatus(status)}
			}

			overview, err := uc.GetOverview(r.Context(), workspaceID, filter)
			if err != nil {
				respondError(w, r, err)
				return
			}

			respondJSON(w, http.StatusOK, overview)
		})

		r.Route("/scan", func(r chi.Router) {
			r.Post("/", func(w http.ResponseWriter, r *http.Request) {
				var req startScanRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
					return
				}

				scan, err := uc.StartScan(r.Context(), req.WorkspaceID)
				if err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusAccepted, startScanResponse{
					ScanID: scan.ID,
					Status: scan.Status,
				})
			})

			r.Get("/{scanID}/status", func(w http.ResponseWriter, r *http.Request) {
				scanID := types.ScanID(chi.URLParam(r, "scanID"))

				status, err := uc.GetScanStatus(r.Context(), scanID)
				if err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusOK, status)
			})

			r.Delete("/{scanID}", func(w http.ResponseWriter, r *http.Request) {
				scanID := types.ScanID(chi.URLParam(r, "scanID"))

				if err := uc.CancelScan(r.Context(), scanID); err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusAccepted, map[string]string{
					"scanId": scanID.String(),
					"status": "cancel_requested",
				})
			})
		})

		r.Route("/issues/{issueID}", func(r chi.Router) {
			r.Get("/fix-options", func(w http.ResponseWriter, r *http.Request) {
				issueID := types.IssueID(chi.URLParam(r, "issueID"))

				options, err := uc.GenerateFixOptions(r.Context(), issueID)
				if err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusOK, map[string]any{
					"issueId": issueID,
					"options": options,
				})
			})

			r.Post("/fix", func(w http.ResponseWriter, r *http.Request) {
				issueID := types.IssueID(chi.URLParam(r, "issueID"))

				var req applyFixRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					respondError(w, r, goerr.Wrap(types.ErrValidationFailed, "invalid request body"))
					return
				}

				issue, err := uc.ApplyFix(r.Context(), &model.ApplyFixInput{
					IssueID:  issueID,
					OptionID: req.OptionID,
					Text:     req.Text,
				})
				if err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusOK, issue)
			})

			r.Post("/dismiss", func(w http.ResponseWriter, r *http.Request) {
				issueID := types.IssueID(chi.URLParam(r, "issueID"))

				issue, err := uc.DismissIssue(r.Context(), issueID)
				if err != nil {
					respondError(w, r, err)
					return
				}

				respondJSON(w, http.StatusOK, issue)
			})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
