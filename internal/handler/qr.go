package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"assettrack/internal/apierror"
	"assettrack/internal/dto"
	"assettrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// QRHandler serves the public asset lookup by QR code.
// No authentication required — read-only, rate-limited, cached in Redis.
type QRHandler struct {
	svc      service.AssetService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewQRHandler(svc service.AssetService, rdb *redis.Client, cacheTTL time.Duration) *QRHandler {
	return &QRHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// Lookup godoc
// @Summary      Public asset lookup by QR code (no authentication)
// @Tags         qr
// @Produce      json
// @Param        code path string true "QR code UUID"
// @Success      200 {object} dto.AssetResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/qr/{code} [get]
func (h *QRHandler) Lookup(c *gin.Context) {
	code, err := uuid.Parse(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Asset not found"))
		return
	}
	ctx := c.Request.Context()
	cacheKey := "qr:" + code.String()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.AssetResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.LookupByQR(ctx, code)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Asset not found"))
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}
