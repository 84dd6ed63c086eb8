package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RequestLogger пишет метод, путь, код ответа и длительность каждого запроса
func RequestLogger(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			switch {
			case rec.status >= http.StatusInternalServerError:
				log.Error("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			case rec.status >= http.StatusBadRequest:
				log.Warn("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			default:
				log.Info("%s %s -> %d (%s)", r.Method, r.URL.Path, rec.status, duration)
			}
		})
	}
}

// Recoverer перехватывает панику в обработчике и отвечает 500
func Recoverer(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if p := recover(); p != nil {
					log.Error("panic in %s %s: %v", r.Method, r.URL.Path, p)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
