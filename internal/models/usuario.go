package models

import "time"

// Papéis dos usuários. Supervisores enxergam os agendamentos de todos
// os vendedores; vendedores só os próprios.
const (
	RoleVendedor   = "vendedor"
	RoleSupervisor = "supervisor"
)

type Usuario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Login string `gorm:"size:50;uniqueIndex;not null" json:"login"`
	Nome  string `gorm:"size:100;not null" json:"nome"`
	Senha string `gorm:"size:255;not null" json:"-"`
	Role  string `gorm:"size:20;default:'vendedor'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
