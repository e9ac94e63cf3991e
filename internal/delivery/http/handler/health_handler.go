package handler

import (
	"context"
	"net/http"
	"time"

	"patient-health-api/internal/delivery/dto"
	"patient-health-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
	}
}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "", dto.HealthStatusResponse{Status: "ok"})
}

// Ready pings Postgres and Redis and answers 503 when either is down.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := dto.HealthStatusResponse{Status: "ok", Checks: map[string]string{}}

	status.Checks["database"] = "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		status.Checks["database"] = err.Error()
	} else if err := sqlDB.PingContext(ctx); err != nil {
		status.Checks["database"] = err.Error()
	}

	status.Checks["redis"] = "ok"
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		status.Checks["redis"] = err.Error()
	}

	for _, check := range status.Checks {
		if check != "ok" {
			status.Status = "unavailable"
			response.JSON(w, http.StatusServiceUnavailable, response.Response{Success: false, Data: status})
			return
		}
	}

	response.Success(w, http.StatusOK, "", status)
}
