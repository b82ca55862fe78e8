package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Anandakumar9/Ask-Anand-sub000/internal/cache"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/dto"
	"github.com/Anandakumar9/Ask-Anand-sub000/internal/llm"
)

const cacheProbeTTL = 5 * time.Second

// HealthController reports the state of the service's dependencies.
type HealthController struct {
	db       *gorm.DB
	store    cache.Store
	provider llm.Provider
}

func NewHealthController(db *gorm.DB, store cache.Store, provider llm.Provider) *HealthController {
	return &HealthController{db: db, store: store, provider: provider}
}

// Health godoc
// @Summary Service health
// @Description Reports database, cache and generation provider status. Returns 503 when the database is unreachable.
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func (c *HealthController) Health(ctx *gin.Context) {
	components := map[string]dto.ComponentStatus{
		"database":   c.databaseStatus(ctx),
		"cache":      c.cacheStatus(ctx),
		"generation": c.generationStatus(),
	}

	status := "ok"
	code := http.StatusOK
	for name, component := range components {
		if component.Status != "down" {
			continue
		}
		status = "degraded"
		// The service cannot answer anything useful without its database.
		if name == "database" {
			code = http.StatusServiceUnavailable
		}
	}

	ctx.JSON(code, dto.HealthResponse{Status: status, Components: components})
}

func (c *HealthController) databaseStatus(ctx *gin.Context) dto.ComponentStatus {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		return dto.ComponentStatus{Status: "down", Detail: err.Error()}
	}
	return dto.ComponentStatus{Status: "up"}
}

func (c *HealthController) cacheStatus(ctx *gin.Context) dto.ComponentStatus {
	key := fmt.Sprintf("health:probe:%d", time.Now().UnixNano())
	reqCtx := ctx.Request.Context()
	if err := c.store.Set(reqCtx, key, []byte("ok"), cacheProbeTTL); err != nil {
		return dto.ComponentStatus{Status: "down", Detail: err.Error()}
	}
	if _, _, err := c.store.GetDel(reqCtx, key); err != nil {
		return dto.ComponentStatus{Status: "down", Detail: err.Error()}
	}
	return dto.ComponentStatus{Status: "up"}
}

func (c *HealthController) generationStatus() dto.ComponentStatus {
	if c.provider == nil {
		return dto.ComponentStatus{Status: "disabled", Detail: "no provider configured"}
	}
	return dto.ComponentStatus{Status: "up", Detail: c.provider.Name()}
}
