package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/dto"
	"github.com/dentalcare/clinic-scheduler/internal/httperr"
	"github.com/dentalcare/clinic-scheduler/internal/httpresp"
	"github.com/dentalcare/clinic-scheduler/internal/middleware"
	"github.com/dentalcare/clinic-scheduler/internal/models"
	"github.com/dentalcare/clinic-scheduler/internal/namecache"
)

type StaffHandler struct {
	db    *gorm.DB
	names *namecache.Cache
}

func NewStaffHandler(db *gorm.DB, names *namecache.Cache) *StaffHandler {
	return &StaffHandler{db: db, names: names}
}

// --------- Requests ---------

type StaffRequest struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"licenseNumber"`
	HireDate      string `json:"hireDate"`
	Active        *bool  `json:"active"`
}

func (r *StaffRequest) hireDate() (*time.Time, error) {
	if r.HireDate == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", r.HireDate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var staff []models.Staff
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("last_name ASC, first_name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Error al listar personal.")
		return
	}

	httpresp.List(c, toStaffDTOs(staff))
}

// ListDentists serves the dentist selector of the appointment form: only
// active staff with a dental specialty.
func (h *StaffHandler) ListDentists(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var staff []models.Staff
	if err := h.db.
		Where("tenant_id = ? AND active = ?", tenantID, true).
		Order("last_name ASC, first_name ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_dentists", "Error al listar dentistas.")
		return
	}

	httpresp.List(c, toStaffDTOs(staff))
}

func (h *StaffHandler) Get(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Miembro del personal no encontrado.")
		return
	}

	c.JSON(http.StatusOK, toStaffDTO(&staff))
}

func (h *StaffHandler) Create(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hire, err := req.hireDate()
	if err != nil {
		httperr.BadRequest(c, "invalid_hire_date", "Fecha de contratación inválida.")
		return
	}

	if req.LicenseNumber != "" {
		var count int64
		h.db.Model(&models.Staff{}).
			Where("tenant_id = ? AND license_number = ?", tenantID, req.LicenseNumber).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "license_already_exists", "La cédula profesional ya está registrada.")
			return
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	staff := models.Staff{
		TenantID:      tenantID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty:     req.Specialty,
		LicenseNumber: req.LicenseNumber,
		HireDate:      hire,
		Active:        active,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Error al crear miembro del personal.")
		return
	}

	c.JSON(http.StatusCreated, toStaffDTO(&staff))
}

func (h *StaffHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Miembro del personal no encontrado.")
		return
	}

	var req StaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hire, err := req.hireDate()
	if err != nil {
		httperr.BadRequest(c, "invalid_hire_date", "Fecha de contratación inválida.")
		return
	}

	staff.FirstName = req.FirstName
	staff.LastName = req.LastName
	staff.Phone = req.Phone
	staff.Email = strings.ToLower(strings.TrimSpace(req.Email))
	staff.Specialty = req.Specialty
	staff.LicenseNumber = req.LicenseNumber
	staff.HireDate = hire
	if req.Active != nil {
		staff.Active = *req.Active
	}

	if err := h.db.Save(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_update_staff", "Error al actualizar personal.")
		return
	}

	h.names.InvalidateStaff(staff.ID)

	c.JSON(http.StatusOK, toStaffDTO(&staff))
}

func (h *StaffHandler) Delete(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var staff models.Staff
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Miembro del personal no encontrado.")
		return
	}

	if err := h.db.Delete(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_staff", "Error al eliminar personal.")
		return
	}

	h.names.InvalidateStaff(staff.ID)

	c.Status(http.StatusNoContent)
}

func toStaffDTO(s *models.Staff) dto.StaffDTO {
	return dto.StaffDTO{
		ID:            s.ID,
		UserID:        s.UserID,
		FirstName:     s.FirstName,
		LastName:      s.LastName,
		FullName:      s.FullName(),
		Phone:         s.Phone,
		Email:         s.Email,
		Specialty:     s.Specialty,
		LicenseNumber: s.LicenseNumber,
		HireDate:      s.HireDate,
		Active:        s.Active,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toStaffDTOs(staff []models.Staff) []dto.StaffDTO {
	out := make([]dto.StaffDTO, 0, len(staff))
	for i := range staff {
		out = append(out, toStaffDTO(&staff[i]))
	}
	return out
}
