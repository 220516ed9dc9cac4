package models

import "gorm.io/gorm"

// SelectedClass is a student's provisional, unpaid pick. Ref is a
// server-generated opaque identifier; clients may address a selection either
// by its numeric id or by this ref.
type SelectedClass struct {
	gorm.Model
	Ref          string  `json:"ref" gorm:"uniqueIndex;not null"`
	StudentEmail string  `json:"studentEmail" gorm:"index;not null"`
	ClassID      uint    `json:"classId" gorm:"index;not null"`
	ClassName    string  `json:"className" gorm:"default:''"`
	Image        string  `json:"image" gorm:"default:''"`
	Price        float64 `json:"price"`
}
