// Package namecache keeps a small LRU of patient and staff display names so
// that denormalizing an appointment list does not hit the database once per
// row. Entries are invalidated whenever the underlying record is mutated.
package namecache

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"gorm.io/gorm"

	"github.com/dentalcare/clinic-scheduler/internal/models"
)

const cacheSize = 512

type Cache struct {
	db       *gorm.DB
	patients *lru.Cache[string, string]
	staff    *lru.Cache[string, string]
}

func New(db *gorm.DB) (*Cache, error) {
	patients, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}
	staff, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, err
	}

	return &Cache{
		db:       db,
		patients: patients,
		staff:    staff,
	}, nil
}

// PatientName returns the display name for a patient id, or "" when the
// patient cannot be found. Ids are uuids, so the cache needs no tenant key.
func (c *Cache) PatientName(id string) string {
	if name, ok := c.patients.Get(id); ok {
		return name
	}

	var p models.Patient
	if err := c.db.Select("first_name", "last_name").First(&p, "id = ?", id).Error; err != nil {
		return ""
	}

	name := p.FullName()
	c.patients.Add(id, name)
	return name
}

func (c *Cache) StaffName(id string) string {
	if name, ok := c.staff.Get(id); ok {
		return name
	}

	var s models.Staff
	if err := c.db.Select("first_name", "last_name").First(&s, "id = ?", id).Error; err != nil {
		return ""
	}

	name := s.FullName()
	c.staff.Add(id, name)
	return name
}

func (c *Cache) InvalidatePatient(id string) {
	c.patients.Remove(id)
}

func (c *Cache) InvalidateStaff(id string) {
	c.staff.Remove(id)
}
