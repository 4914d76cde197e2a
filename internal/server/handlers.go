package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/ShafqaatMalik/financial-data-project/internal/metrics"
	"github.com/ShafqaatMalik/financial-data-project/internal/types"
	"github.com/ShafqaatMalik/financial-data-project/pkg/errors"
	"github.com/ShafqaatMalik/financial-data-project/pkg/marketdata"
)

const (
	dateLayout = "2006-01-02"

	// defaultWindow matches the dashboard's default moving-average slider.
	defaultWindow = 30
)

type seriesResponse struct {
	Ticker  string                         `json:"ticker"`
	Window  int                            `json:"window"`
	Bars    []types.Bar                    `json:"bars"`
	Rolling []types.RollingPoint           `json:"rolling"`
	Summary optional.Option[types.Summary] `json:"summary"`
}

// compareEntry augments a MetricResult with an inline error message, so the
// UI can flag a failed ticker next to its siblings instead of aborting the
// whole view.
type compareEntry struct {
	types.MetricResult
	Error string `json:"error,omitempty"`
}

type compareResponse struct {
	Window  int                     `json:"window"`
	Results map[string]compareEntry `json:"results"`
}

type errorResponse struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	ticker := strings.ToUpper(mux.Vars(r)["ticker"])

	start, end, window, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cacheKey("series", ticker, start.Format(dateLayout), end.Format(dateLayout), strconv.Itoa(window))
	if payload, ok := s.cache.get(key); ok {
		writePayload(w, payload, true)
		return
	}

	series, err := s.client.Fetch(r.Context(), marketdata.FetchParams{
		Ticker: ticker,
		Start:  start,
		End:    end,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	resp := seriesResponse{
		Ticker:  ticker,
		Window:  window,
		Bars:    series.Bars,
		Rolling: []types.RollingPoint{},
		Summary: optional.None[types.Summary](),
	}

	// An empty range is a renderable "no data" view, not an error.
	if !series.Empty() {
		rolling, err := metrics.RollingAverage(series, window)
		if err != nil {
			s.writeError(w, err)
			return
		}

		summary, err := metrics.Summarize(series)
		if err != nil {
			s.writeError(w, err)
			return
		}

		resp.Rolling = rolling
		resp.Summary = optional.Some(summary)
	}

	s.writeJSON(w, key, resp)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	tickers := parseTickers(r.URL.Query().Get("tickers"))
	if len(tickers) == 0 {
		s.writeError(w, errors.New(errors.ErrCodeInvalidParameter, "at least one ticker is required"))
		return
	}

	start, end, window, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := cacheKey("compare", strings.Join(tickers, ","),
		start.Format(dateLayout), end.Format(dateLayout), strconv.Itoa(window))
	if payload, ok := s.cache.get(key); ok {
		writePayload(w, payload, true)
		return
	}

	results := s.client.FetchAll(r.Context(), tickers, start, end)

	entries := make(map[string]compareEntry, len(results))
	for ticker, result := range metrics.Compare(results, window) {
		entry := compareEntry{MetricResult: result}
		if result.Err != nil {
			entry.Error = result.Err.Error()
		}

		entries[ticker] = entry
	}

	s.writeJSON(w, key, compareResponse{Window: window, Results: entries})
}

// parseQuery extracts the shared start/end/window query parameters.
func parseQuery(r *http.Request) (start, end time.Time, window int, err error) {
	q := r.URL.Query()

	start, err = time.Parse(dateLayout, q.Get("start"))
	if err != nil {
		return time.Time{}, time.Time{}, 0,
			errors.Wrap(errors.ErrCodeInvalidParameter, "invalid start date, expected YYYY-MM-DD", err)
	}

	end, err = time.Parse(dateLayout, q.Get("end"))
	if err != nil {
		return time.Time{}, time.Time{}, 0,
			errors.Wrap(errors.ErrCodeInvalidParameter, "invalid end date, expected YYYY-MM-DD", err)
	}

	window = defaultWindow

	if v := q.Get("window"); v != "" {
		window, err = strconv.Atoi(v)
		if err != nil {
			return time.Time{}, time.Time{}, 0,
				errors.Wrap(errors.ErrCodeInvalidParameter, "invalid window, expected an integer", err)
		}
	}

	return start, end, window, nil
}

// parseTickers splits a comma-separated ticker list, trimming and
// upper-casing each entry.
func parseTickers(raw string) []string {
	parts := strings.Split(raw, ",")

	tickers := make([]string, 0, len(parts))

	for _, p := range parts {
		if t := strings.ToUpper(strings.TrimSpace(p)); t != "" {
			tickers = append(tickers, t)
		}
	}

	return tickers
}

func (s *Server) writeJSON(w http.ResponseWriter, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeUnknown, "failed to encode response", err))
		return
	}

	s.cache.set(key, payload)
	writePayload(w, payload, false)
}

func writePayload(w http.ResponseWriter, payload []byte, cached bool) {
	w.Header().Set("Content-Type", "application/json")

	if cached {
		w.Header().Set("X-Cache", "hit")
	}

	_, _ = w.Write(payload)
}

// writeError maps a typed error onto an HTTP status and a JSON body the UI
// can render inline.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := statusForCode(code)

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.Error(err))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Code:  int(code),
		Error: err.Error(),
	})
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidParameter,
		errors.ErrCodeInvalidDateRange,
		errors.ErrCodeInvalidWindow:
		return http.StatusBadRequest
	case errors.ErrCodeTickerNotFound, errors.ErrCodeEmptySeries:
		return http.StatusNotFound
	case errors.ErrCodeProviderFailed, errors.ErrCodeProviderParseFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
