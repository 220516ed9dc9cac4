package repository

import (
	"craftopia/models"

	"gorm.io/gorm"
)

// PaymentRepository is the injected store for the append-only payment ledger.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	FindByStudent(email string) ([]models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// FindByStudent returns ledger rows for one student, newest first.
func (r *paymentRepository) FindByStudent(email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("student_email = ?", email).Order("date desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}
