package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/zotcurve/internal/charts"
	"github.com/zotcurve/internal/format"
	"github.com/zotcurve/internal/grades"
	"github.com/zotcurve/internal/http/templates"
	"github.com/zotcurve/internal/query"
	"github.com/zotcurve/internal/sessions"
	"github.com/zotcurve/internal/statistics"
)

const invalidSearchMessage = "Invalid search parameters, use at least one of the bold search tools."

var rowColors = []string{"#ffffff", "#f2f2f2"}

func Handler(
	logger *slog.Logger,
	renderer templates.Renderer,
	staticHandler http.Handler,
	dataset *grades.Dataset,
	sessionsStore *sessions.Store,
	defaultYear string,
) http.HandlerFunc {
	withSession := WithSession(logger, sessionsStore, defaultYear)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", withSession(handleSearchPage(logger, renderer, dataset, sessionsStore)))
	mux.HandleFunc("GET /classes", withSession(handleListClasses(logger, renderer, dataset, sessionsStore)))
	mux.HandleFunc("GET /classes/{id}/{$}", withSession(handleShowClass(logger, renderer, dataset, sessionsStore)))
	mux.HandleFunc("GET /classes/{id}/chart.json", handleGetChart(logger, dataset))
	mux.HandleFunc("GET /api/classes", handleAPIListClasses(logger, dataset))
	mux.HandleFunc("POST /reset", withSession(handleReset(logger, sessionsStore, defaultYear)))

	mux.HandleFunc("GET /", staticHandler.ServeHTTP)

	return WithAccessLogs(logger)(mux.ServeHTTP)
}

func handleSearchPage(
	logger *slog.Logger,
	renderer templates.Renderer,
	dataset *grades.Dataset,
	sessionsStore *sessions.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessions.FromContext(r.Context())
		session.View.Reset()
		if err := sessionsStore.Insert(r.Context(), session); err != nil {
			logger.Error("insert session", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if err := renderer.RenderSearchPage(w, searchData(dataset, session.Query, "")); err != nil {
			logger.Error("render search page", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}

func handleListClasses(
	logger *slog.Logger,
	renderer templates.Renderer,
	dataset *grades.Dataset,
	sessionsStore *sessions.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := query.FromValues(r.URL.Query())

		records, err := query.Evaluate(dataset.Records(), q)
		if errors.Is(err, query.ErrInvalidSearch) {
			w.WriteHeader(http.StatusBadRequest)
			if err := renderer.RenderSearchPage(w, searchData(dataset, q, invalidSearchMessage)); err != nil {
				logger.Error("render search page", "error", err)
			}
			return
		}

		session, _ := sessions.FromContext(r.Context())
		session.Query = q
		session.View.Reset()
		if err := sessionsStore.Insert(r.Context(), session); err != nil {
			logger.Error("insert session", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if err := renderer.RenderClassesPage(w, classesData(q, records, session.View, nil)); err != nil {
			logger.Error("render classes page", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}

func handleShowClass(
	logger *slog.Logger,
	renderer templates.Renderer,
	dataset *grades.Dataset,
	sessionsStore *sessions.Store,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := findRecord(w, r, dataset)
		if !ok {
			return
		}

		session, _ := sessions.FromContext(r.Context())
		records := []grades.Record{*record}
		if query.IsMeaningful(session.Query) {
			records = query.Filter(dataset.Records(), session.Query)
		}

		position := indexByID(records, record.ID)
		if position < 0 {
			// the class is not part of the last search, show it on its own
			records = []grades.Record{*record}
			position = 0
		}
		session.View.Select(record.ID, rowColor(position))
		if err := sessionsStore.Insert(r.Context(), session); err != nil {
			logger.Error("insert session", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if err := renderer.RenderClassesPage(w, classesData(session.Query, records, session.View, charts.New(record))); err != nil {
			logger.Error("render classes page", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}
}

func handleGetChart(logger *slog.Logger, dataset *grades.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, ok := findRecord(w, r, dataset)
		if !ok {
			return
		}
		writeJSON(logger, w, http.StatusOK, charts.New(record))
	}
}

type listClassesResponse struct {
	Classes []grades.Record `json:"classes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func handleAPIListClasses(logger *slog.Logger, dataset *grades.Dataset) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := query.Evaluate(dataset.Records(), query.FromValues(r.URL.Query()))
		if errors.Is(err, query.ErrInvalidSearch) {
			writeJSON(logger, w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(logger, w, http.StatusOK, listClassesResponse{Classes: records})
	}
}

func handleReset(
	logger *slog.Logger,
	sessionsStore *sessions.Store,
	defaultYear string,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, _ := sessions.FromContext(r.Context())
		session.Reset(defaultYear)
		if err := sessionsStore.Insert(r.Context(), session); err != nil {
			logger.Error("insert session", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/", http.StatusFound)
	}
}

func findRecord(w http.ResponseWriter, r *http.Request, dataset *grades.Dataset) (*grades.Record, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	record, ok := dataset.FindByID(id)
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return nil, false
	}
	return record, true
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", "error", err)
	}
}

func searchData(dataset *grades.Dataset, q query.Query, errorMessage string) templates.SearchData {
	return templates.SearchData{
		Query:       q,
		Years:       dataset.Years(),
		Terms:       dataset.Terms(),
		Departments: dataset.Departments(),
		Error:       errorMessage,
	}
}

func classesData(q query.Query, records []grades.Record, view sessions.ViewState, chart *charts.Chart) templates.ClassesData {
	rows := make([]templates.Row, 0, len(records))
	for i, r := range records {
		rows = append(rows, templates.Row{
			ID:           r.ID,
			Term:         format.Term(r.Year, r.Term),
			Department:   r.Department,
			CourseNumber: r.CourseNumber,
			CourseCode:   r.CourseCode,
			Title:        r.Title,
			Instructor:   strings.TrimSpace(format.Capitalize(r.Instructor)),
			Color:        view.RowColor(r.ID, rowColor(i)),
		})
	}
	return templates.ClassesData{
		Query:       q,
		Rows:        rows,
		Instructors: statistics.ByInstructor(records),
		Chart:       chart,
	}
}

func rowColor(position int) string {
	return rowColors[position%len(rowColors)]
}

func indexByID(records []grades.Record, id int) int {
	return slices.IndexFunc(records, func(r grades.Record) bool {
		return r.ID == id
	})
}
