package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/dto"
	"github.com/dentalcare/clinic-scheduler/internal/httperr"
	"github.com/dentalcare/clinic-scheduler/internal/httpresp"
	"github.com/dentalcare/clinic-scheduler/internal/middleware"
	"github.com/dentalcare/clinic-scheduler/internal/models"
	"github.com/dentalcare/clinic-scheduler/internal/namecache"
)

var validRoles = map[string]bool{
	"ADMIN":     true,
	"DENTIST":   true,
	"ASSISTANT": true,
}

type UserHandler struct {
	db    *gorm.DB
	names *namecache.Cache
}

func NewUserHandler(db *gorm.DB, names *namecache.Cache) *UserHandler {
	return &UserHandler{db: db, names: names}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Role      string  `json:"role" binding:"required"`
	StaffID   *string `json:"staffId"`
}

type UpdateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required"`
}

type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var users []models.User
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Error al listar usuarios.")
		return
	}

	out := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		out = append(out, h.toUserDTO(&users[i]))
	}

	httpresp.List(c, out)
}

func (h *UserHandler) Create(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validRoles[req.Role] {
		httperr.BadRequest(c, "invalid_role", "Rol inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "El correo ya está registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user := models.User{
		TenantID:     tenantID,
		StaffID:      req.StaffID,
		Email:        email,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         req.Role,
		Active:       true,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Error al crear usuario.")
		return
	}

	c.JSON(http.StatusCreated, h.toUserDTO(&user))
}

func (h *UserHandler) Update(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var user models.User
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if !validRoles[req.Role] {
		httperr.BadRequest(c, "invalid_role", "Rol inválido.")
		return
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Role = req.Role

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Error al actualizar usuario.")
		return
	}

	c.JSON(http.StatusOK, h.toUserDTO(&user))
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	id := c.Param("id")

	var user models.User
	if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user.PasswordHash = string(hashed)
	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_change_password", "Error al cambiar contraseña.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) SetActive(active bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.MustGet(middleware.ContextTenantID).(string)
		id := c.Param("id")

		var user models.User
		if err := h.db.Where("id = ? AND tenant_id = ?", id, tenantID).First(&user).Error; err != nil {
			httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
			return
		}

		user.Active = active
		if err := h.db.Save(&user).Error; err != nil {
			httperr.Internal(c, "failed_to_update_user", "Error al actualizar usuario.")
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// LinkStaff ties a login account to a staff member, both directions.
func (h *UserHandler) LinkStaff(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	userID := c.Param("id")
	staffID := c.Param("staffId")

	var user models.User
	if err := h.db.Where("id = ? AND tenant_id = ?", userID, tenantID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var staff models.Staff
	if err := h.db.Where("id = ? AND tenant_id = ?", staffID, tenantID).First(&staff).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Miembro del personal no encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		user.StaffID = &staff.ID
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		staff.UserID = &user.ID
		return tx.Save(&staff).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_link_staff", "Error al vincular personal.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) UnlinkStaff(c *gin.Context) {
	tenantID := c.MustGet(middleware.ContextTenantID).(string)
	userID := c.Param("id")

	var user models.User
	if err := h.db.Where("id = ? AND tenant_id = ?", userID, tenantID).First(&user).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if user.StaffID != nil {
			if err := tx.Model(&models.Staff{}).
				Where("id = ?", *user.StaffID).
				Update("user_id", nil).Error; err != nil {
				return err
			}
		}
		user.StaffID = nil
		return tx.Save(&user).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_unlink_staff", "Error al desvincular personal.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) toUserDTO(u *models.User) dto.UserDTO {
	var staffName string
	if u.StaffID != nil {
		staffName = h.names.StaffName(*u.StaffID)
	}

	return dto.UserDTO{
		ID:        u.ID,
		TenantID:  u.TenantID,
		StaffID:   u.StaffID,
		StaffName: staffName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
