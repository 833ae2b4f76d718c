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

type PatientHandler struct {
	db    *gorm.DB
	names *namecache.Cache
}

func NewPatientHandler(db *gorm.DB, names *namecache.Cache) *PatientHandler {
	return &PatientHandler{db: db, names: names}
}

// --------- Requests ---------

type PatientRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

func (r *PatientRequest) birthDate() (*time.Time, error) {
	if r.BirthDate == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// --------- Handlers ---------

func (h *PatientHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Where("tenant_id = ?", tenantID)

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like, like,
		)
	}

	var patients []models.Patient
	if err := q.Order("last_name ASC, first_name ASC").Find(&patients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_patients", "Error al listar pacientes.")
		return
	}

	out := make([]dto.PatientDTO, 0, len(patients))
	for i := range patients {
		out = append(out, toPatientDTO(&patients[i]))
	}

	httpresp.List(c, out)
}

func (h *PatientHandler) Get(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
		return
	}

	c.JSON(http.StatusOK, toPatientDTO(&patient))
}

func (h *PatientHandler) Create(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	birth, err := req.birthDate()
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Fecha de nacimiento inválida.")
		return
	}

	patient := models.Patient{
		TenantID:  tenantID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		BirthDate: birth,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_create_patient", "Error al crear paciente.")
		return
	}

	c.JSON(http.StatusCreated, toPatientDTO(&patient))
}

func (h *PatientHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
		return
	}

	var req PatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	birth, err := req.birthDate()
	if err != nil {
		httperr.BadRequest(c, "invalid_birth_date", "Fecha de nacimiento inválida.")
		return
	}

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.Phone = req.Phone
	patient.Email = strings.ToLower(strings.TrimSpace(req.Email))
	patient.BirthDate = birth

	if err := h.db.Save(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_update_patient", "Error al actualizar paciente.")
		return
	}

	h.names.InvalidatePatient(patient.ID)

	c.JSON(http.StatusOK, toPatientDTO(&patient))
}

func (h *PatientHandler) Delete(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var patient models.Patient
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&patient).Error; err != nil {
		httperr.NotFound(c, "patient_not_found", "Paciente no encontrado.")
		return
	}

	// Soft delete; appointments keep their patient reference.
	if err := h.db.Delete(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_patient", "Error al eliminar paciente.")
		return
	}

	h.names.InvalidatePatient(patient.ID)

	c.Status(http.StatusNoContent)
}

func toPatientDTO(p *models.Patient) dto.PatientDTO {
	return dto.PatientDTO{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		FullName:  p.FullName(),
		Phone:     p.Phone,
		Email:     p.Email,
		BirthDate: p.BirthDate,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
