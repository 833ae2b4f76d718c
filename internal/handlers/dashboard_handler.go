package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/config"
	domain "github.com/dentalcare/clinic-scheduler/internal/domain/appointment"
	"github.com/dentalcare/clinic-scheduler/internal/dto"
	"github.com/dentalcare/clinic-scheduler/internal/httperr"
	"github.com/dentalcare/clinic-scheduler/internal/middleware"
	"github.com/dentalcare/clinic-scheduler/internal/models"
	"github.com/dentalcare/clinic-scheduler/internal/statscache"
	"github.com/dentalcare/clinic-scheduler/internal/timezone"
)

type DashboardHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	stats *statscache.Cache
}

func NewDashboardHandler(db *gorm.DB, cfg *config.Config, stats *statscache.Cache) *DashboardHandler {
	return &DashboardHandler{db: db, cfg: cfg, stats: stats}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	if cached, ok := h.stats.Get(c.Request.Context(), tenantID); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	var out dto.DashboardStatsDTO

	if err := h.db.Model(&models.Patient{}).
		Where("tenant_id = ?", tenantID).
		Count(&out.TotalPatients).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Error al cargar estadísticas.")
		return
	}

	if err := h.db.Model(&models.Staff{}).
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Count(&out.ActiveStaff).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Error al cargar estadísticas.")
		return
	}

	loc := timezone.Location(h.cfg.Timezone)
	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if err := h.db.Model(&models.Appointment{}).
		Where("tenant_id = ? AND start_time >= ? AND start_time < ?",
			tenantID, today, today.AddDate(0, 0, 1)).
		Count(&out.AppointmentsToday).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Error al cargar estadísticas.")
		return
	}

	if err := h.db.Model(&models.Appointment{}).
		Where("tenant_id = ? AND status = ?", tenantID, string(domain.StatusScheduled)).
		Count(&out.AppointmentsPending).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Error al cargar estadísticas.")
		return
	}

	h.stats.Set(c.Request.Context(), tenantID, &out)

	c.JSON(http.StatusOK, out)
}
