package repository

import (
	"craftopia/models"

	"gorm.io/gorm"
)

// ClassRepository is the injected store for class postings.
type ClassRepository interface {
	Create(class *models.Class) error
	FindByID(id uint) (*models.Class, error)
	FindByInstructor(email string) ([]models.Class, error)
	FindAll() ([]models.Class, error)
	FindApproved() ([]models.Class, error)
	FindTopEnrolled(limit int) ([]models.Class, error)
	UpdateFields(id uint, fields map[string]interface{}) (int64, error)
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *models.Class) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindByID(id uint) (*models.Class, error) {
	var class models.Class
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindByInstructor(email string) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Where("instructor_email = ?", email).Order("created_at desc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindAll() ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Order("created_at desc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindApproved() ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Where("status = ?", "approved").Order("created_at desc").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// FindTopEnrolled returns approved classes ordered by enrollment count,
// capped at limit. Tie order follows the store's scan order.
func (r *classRepository) FindTopEnrolled(limit int) ([]models.Class, error) {
	var classes []models.Class
	if err := r.db.Where("status = ?", "approved").
		Order("total_enrolled desc").
		Limit(limit).
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

// UpdateFields writes only the supplied columns; absent columns keep their
// prior values. There is no status transition guard.
func (r *classRepository) UpdateFields(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Class{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
