package models

import "gorm.io/gorm"

// Class is an instructor's posting. Status is stored exactly as supplied by
// the client (pending, approved, denied); no default is enforced server-side.
type Class struct {
	gorm.Model
	Name            string  `json:"name"`
	Image           string  `json:"image" gorm:"default:''"`
	InstructorName  string  `json:"instructorName" gorm:"default:''"`
	InstructorEmail string  `json:"instructorEmail" gorm:"index;not null"`
	Price           float64 `json:"price"`
	AvailableSeats  int     `json:"availableSeats"`
	TotalEnrolled   int     `json:"totalEnrolled" gorm:"default:0"`
	Status          string  `json:"status"`
	Feedback        string  `json:"feedback" gorm:"default:''"`
	Clicked         bool    `json:"clicked" gorm:"default:false"`
}
