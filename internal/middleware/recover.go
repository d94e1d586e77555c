package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

func Recover(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.WithFields(logrus.Fields{
						"panic":          rec,
						"path":           r.URL.Path,
						"correlation_id": GetCorrelationID(r.Context()),
					}).Error("recovered from panic")
					writeMessage(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
