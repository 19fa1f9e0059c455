package nutrition

import (
	"net/http"
	"strings"
	"time"

	"nutrition-estimator/internal/core/nutrition"
	"nutrition-estimator/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBatchSize = 20

// EstimateRequest asks for per-serving nutrition of one named dish.
type EstimateRequest struct {
	DishName string `json:"dish_name" binding:"required"`
}

// BatchRequest asks for several dishes in one call.
type BatchRequest struct {
	DishNames []string `json:"dish_names" binding:"required"`
}

// BatchResponse wraps the per-dish results.
type BatchResponse struct {
	Results []common.EstimationResult `json:"results"`
}

// Handler serves the nutrition estimation endpoints.
type Handler struct {
	estimator *nutrition.Estimator
}

// NewHandler creates a nutrition handler over an estimator.
func NewHandler(estimator *nutrition.Estimator) *Handler {
	return &Handler{estimator: estimator}
}

// HandleEstimate handles POST /api/v1/nutrition.
func (h *Handler) HandleEstimate(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	dishName := strings.TrimSpace(req.DishName)
	if dishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": common.ErrMissingDishName.Message,
			"code":  common.ErrMissingDishName.Code,
		})
		return
	}

	start := time.Now()
	result := h.estimator.Estimate(c.Request.Context(), dishName)

	common.LogInfo("nutrition estimation served",
		zap.String("request_id", requestID),
		zap.String("dish", dishName),
		zap.String("dish_type", result.DishType),
		zap.Duration("duration", time.Since(start)),
	)

	c.JSON(http.StatusOK, result)
}

// HandleBatch handles POST /api/v1/nutrition/batch. Per-dish failures show
// up inside each result; the HTTP call itself only fails on bad input.
func (h *Handler) HandleBatch(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("Invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	if len(req.DishNames) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "dish_names must not be empty",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}
	if len(req.DishNames) > maxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    "too many dishes in one request",
			"code":     common.ErrCodeInvalidRequest,
			"max_size": maxBatchSize,
		})
		return
	}

	start := time.Now()
	results := make([]common.EstimationResult, 0, len(req.DishNames))
	for _, name := range req.DishNames {
		name = strings.TrimSpace(name)
		if name == "" {
			results = append(results, common.EstimationResult{
				DishType:        "Unknown",
				IngredientsUsed: []common.IngredientUsed{},
				Error:           common.ErrMissingDishName.Message,
			})
			continue
		}
		results = append(results, h.estimator.Estimate(c.Request.Context(), name))
	}

	common.LogInfo("batch nutrition estimation served",
		zap.String("request_id", requestID),
		zap.Int("dishes", len(req.DishNames)),
		zap.Duration("duration", time.Since(start)),
	)

	c.JSON(http.StatusOK, BatchResponse{Results: results})
}
