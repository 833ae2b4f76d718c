package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/audit"
	"github.com/dentalcare/clinic-scheduler/internal/config"
	domain "github.com/dentalcare/clinic-scheduler/internal/domain/appointment"
	"github.com/dentalcare/clinic-scheduler/internal/dto"
	"github.com/dentalcare/clinic-scheduler/internal/httperr"
	"github.com/dentalcare/clinic-scheduler/internal/httpresp"
	"github.com/dentalcare/clinic-scheduler/internal/middleware"
	"github.com/dentalcare/clinic-scheduler/internal/models"
	"github.com/dentalcare/clinic-scheduler/internal/namecache"
	"github.com/dentalcare/clinic-scheduler/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	names *namecache.Cache
	audit *audit.Dispatcher
}

func NewAppointmentHandler(
	db *gorm.DB,
	cfg *config.Config,
	names *namecache.Cache,
	dispatcher *audit.Dispatcher,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:    db,
		cfg:   cfg,
		names: names,
		audit: dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	PatientID       string    `json:"patientId" binding:"required"`
	DentistID       string    `json:"dentistId" binding:"required"`
	StartTime       time.Time `json:"startTime" binding:"required"`
	DurationMinutes int       `json:"durationMinutes" binding:"required"`
	Status          string    `json:"status" binding:"required"`
	Notes           string    `json:"notes"`
}

func (h *AppointmentHandler) validateRequest(c *gin.Context, req *AppointmentRequest) bool {
	if req.DurationMinutes < 15 {
		httperr.BadRequest(c, "invalid_duration", "La duración debe ser al menos 15 minutos.")
		return false
	}
	if !domain.IsValidStatus(req.Status) {
		httperr.BadRequest(c, "invalid_status", "Estado inválido.")
		return false
	}
	return true
}

// checkDentistFree rejects drafts that overlap another non-cancelled
// appointment of the same dentist. excludeID skips the appointment being
// edited so it never collides with itself.
func (h *AppointmentHandler) checkDentistFree(tenantID string, req *AppointmentRequest, excludeID string) error {
	newStart := req.StartTime
	newEnd := req.StartTime.Add(time.Duration(req.DurationMinutes) * time.Minute)

	q := h.db.Model(&models.Appointment{}).
		Where("tenant_id = ? AND dentist_id = ? AND status <> ?", tenantID, req.DentistID, string(domain.StatusCancelled)).
		Where("start_time < ? AND start_time + (duration_minutes * interval '1 minute') > ?", newEnd, newStart)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var overlapping int64
	if err := q.Count(&overlapping).Error; err != nil {
		return err
	}
	if overlapping > 0 {
		return httperr.ErrBusiness("dentist_busy")
	}
	return nil
}

// ======================================================
// LIST (all, or inclusive date range)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	q := h.db.Where("tenant_id = ?", tenantID)

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")

	if startStr != "" && endStr != "" {
		loc := timezone.Location(h.cfg.Timezone)

		start, err := time.ParseInLocation("2006-01-02", startStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Fecha inicial inválida.")
			return
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "Fecha final inválida.")
			return
		}

		// endDate is inclusive: everything strictly before the next midnight.
		q = q.Where("start_time >= ? AND start_time < ?", start, end.AddDate(0, 0, 1))
	}

	var appointments []models.Appointment
	if err := q.Order("start_time ASC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, h.toDTO(&appointments[i]))
	}

	httpresp.List(c, out)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	c.JSON(http.StatusOK, h.toDTO(&ap))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !h.validateRequest(c, &req) {
		return
	}

	if err := h.checkDentistFree(tenantID, &req, ""); err != nil {
		if httperr.IsBusiness(err, "dentist_busy") {
			httperr.Write(c, http.StatusConflict, "dentist_busy", "El dentista ya tiene una cita en ese horario.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear cita.")
		return
	}

	ap := models.Appointment{
		TenantID:        tenantID,
		PatientID:       req.PatientID,
		DentistID:       req.DentistID,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Status:          req.Status,
		Notes:           req.Notes,
	}

	if err := h.db.Create(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear cita.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   &userID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusCreated, h.toDTO(&ap))
}

// ======================================================
// UPDATE (full replace)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !h.validateRequest(c, &req) {
		return
	}

	if err := h.checkDentistFree(tenantID, &req, ap.ID); err != nil {
		if httperr.IsBusiness(err, "dentist_busy") {
			httperr.Write(c, http.StatusConflict, "dentist_busy", "El dentista ya tiene una cita en ese horario.")
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar cita.")
		return
	}

	ap.PatientID = req.PatientID
	ap.DentistID = req.DentistID
	ap.StartTime = req.StartTime
	ap.DurationMinutes = req.DurationMinutes
	ap.Status = req.Status
	ap.Notes = req.Notes

	if err := h.db.Save(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar cita.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   &userID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.JSON(http.StatusOK, h.toDTO(&ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	userID := c.MustGet(middleware.ContextUserID).(string)
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&ap).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
		return
	}

	if err := h.db.Delete(&ap).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Error al eliminar cita.")
		return
	}

	h.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   &userID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS TAXONOMY
// ======================================================

func (h *AppointmentHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Statuses())
}

// ======================================================
// DTO
// ======================================================

func (h *AppointmentHandler) toDTO(ap *models.Appointment) dto.AppointmentDTO {
	return dto.AppointmentDTO{
		ID:              ap.ID,
		PatientID:       ap.PatientID,
		PatientName:     h.names.PatientName(ap.PatientID),
		DentistID:       ap.DentistID,
		DentistName:     h.names.StaffName(ap.DentistID),
		StartTime:       ap.StartTime,
		DurationMinutes: ap.DurationMinutes,
		Status:          ap.Status,
		Notes:           ap.Notes,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}
