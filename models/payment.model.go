package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Payment is an append-only ledger row, created once per completed
// enrollment. ClassID keeps the client-supplied identifier verbatim (numeric
// class id or selection ref). GatewayResponse keeps the raw processor payload.
type Payment struct {
	gorm.Model
	StudentEmail    string         `json:"studentEmail" gorm:"index;not null"`
	ClassID         string         `json:"classId" gorm:"not null"`
	ClassName       string         `json:"className" gorm:"default:''"`
	Amount          float64        `json:"amount" gorm:"not null"`
	TransactionID   string         `json:"transactionId" gorm:"default:''"`
	Date            time.Time      `json:"date"`
	GatewayResponse datatypes.JSON `json:"gatewayResponse"`
}
