package models

import "time"

// Agendamento é o registro de uma visita comercial. Os registros são
// imutáveis: não existe atualização nem remoção depois de criados.
type Agendamento struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Data     string `gorm:"size:10;not null" json:"Data"`
	Hora     string `gorm:"size:5;not null" json:"Hora"`
	Nome     string `gorm:"size:100" json:"Nome"`
	Telefone string `gorm:"size:20" json:"Telefone"`

	// Fechou: "Sim" | "Não" | "Em negociação"
	Fechou string `gorm:"size:20" json:"Fechou"`

	// Valor fica como o vendedor digitou; formatação monetária é só exibição.
	Valor string `gorm:"size:30" json:"Valor"`

	// CEP sempre persistido normalizado: NNNNN-NNN.
	CEP string `gorm:"size:9" json:"CEP"`

	Observacao string `gorm:"type:text" json:"Observacao"`

	// Usuario é o login do vendedor dono do registro, carimbado no servidor.
	Usuario string `gorm:"size:50;index;not null" json:"Usuario"`

	CreatedAt time.Time `json:"created_at"`
}
