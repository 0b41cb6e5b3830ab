package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// HTTPMetrics интерфейс записи метрик HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, path string, status int, duration time.Duration)
}

// statusRecorder перехватывает код ответа для метрик
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Metrics записывает метрики по каждому HTTP запросу.
// В качестве пути используется шаблон маршрута, а не фактический URL,
// чтобы не раздувать кардинальность метрик
func Metrics(m HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if tmpl, err := route.GetPathTemplate(); err == nil {
					path = tmpl
				}
			}

			m.ObserveHTTPRequest(r.Method, path, rec.status, time.Since(start))
		})
	}
}
