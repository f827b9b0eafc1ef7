package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/report"
	"github.com/limbo/lifeboard/pkg/httputil"
)

// GetReport serves /reports/{period}?date=YYYY-MM-DD. Without date the current period is reported.
func (s *Server) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := s.uidOrUnauthorized(w, r, "report")
	if !ok {
		return
	}
	period, err := report.ParsePeriodType(r.PathValue("period"))
	if err != nil {
		logger.Error("report error: unknown period", slog.String("period", r.PathValue("period")))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be weekly or monthly", nil)
		return
	}
	anchor, err := parseOptionalDay(r.URL.Query().Get("date"))
	if err != nil {
		logger.Error("report error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	rep, err := s.reportService.GetReport(ctx, uid, period, anchor)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrReportDataUnavailable):
			logger.Error("report error: data unavailable", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "report data is temporarily unavailable", nil)
		case errors.Is(err, report.ErrUnknownPeriod):
			logger.Error("report error: unknown period")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "period must be weekly or monthly", nil)
		default:
			logger.Error("report error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building report", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rep)
	logger.Info("report provided", slog.String("period", string(period)))
}
