package repository

import (
	"strconv"

	"craftopia/models"

	"gorm.io/gorm"
)

// SelectionRepository is the injected store for pending selections. Lookups
// accept either the numeric id or the opaque ref a selection was created
// with; both paths are kept deliberately.
type SelectionRepository interface {
	Create(selection *models.SelectedClass) error
	FindAll() ([]models.SelectedClass, error)
	FindByStudent(email string) ([]models.SelectedClass, error)
	FindByRef(ref string) (*models.SelectedClass, error)
	DeleteByIdentifier(id string) (int64, error)
	DeleteForEnrollment(classID uint, studentEmail string) (int64, error)
}

type selectionRepository struct {
	db *gorm.DB
}

func NewSelectionRepository(db *gorm.DB) SelectionRepository {
	return &selectionRepository{db: db}
}

func (r *selectionRepository) Create(selection *models.SelectedClass) error {
	return r.db.Create(selection).Error
}

func (r *selectionRepository) FindAll() ([]models.SelectedClass, error) {
	var selections []models.SelectedClass
	if err := r.db.Order("created_at desc").Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *selectionRepository) FindByStudent(email string) ([]models.SelectedClass, error) {
	var selections []models.SelectedClass
	if err := r.db.Where("student_email = ?", email).Order("created_at desc").Find(&selections).Error; err != nil {
		return nil, err
	}
	return selections, nil
}

func (r *selectionRepository) FindByRef(ref string) (*models.SelectedClass, error) {
	var selection models.SelectedClass
	if err := r.db.Where("ref = ?", ref).First(&selection).Error; err != nil {
		return nil, err
	}
	return &selection, nil
}

// DeleteByIdentifier removes a selection addressed either by its numeric id
// or by its ref.
func (r *selectionRepository) DeleteByIdentifier(id string) (int64, error) {
	var res *gorm.DB
	if n, err := strconv.ParseUint(id, 10, 64); err == nil {
		res = r.db.Where("id = ? OR ref = ?", uint(n), id).Delete(&models.SelectedClass{})
	} else {
		res = r.db.Where("ref = ?", id).Delete(&models.SelectedClass{})
	}
	return res.RowsAffected, res.Error
}

// DeleteForEnrollment removes every selection a student holds for a class.
// Duplicate selections are possible, so this may delete more than one row.
func (r *selectionRepository) DeleteForEnrollment(classID uint, studentEmail string) (int64, error) {
	res := r.db.Where("class_id = ? AND student_email = ?", classID, studentEmail).
		Delete(&models.SelectedClass{})
	return res.RowsAffected, res.Error
}
