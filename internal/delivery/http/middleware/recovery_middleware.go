package middleware

import (
	"net/http"
	"runtime/debug"

	"patient-health-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				traceID := GetRequestIDFromContext(r.Context())
				m.log.WithFields(logrus.Fields{
					"request_id": traceID,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				}).Error("Recovered from panic")

				response.Fail(w, http.StatusInternalServerError, "Internal server error", response.CodeInternalServer, traceID)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
