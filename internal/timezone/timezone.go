package timezone

import "time"

// DefaultTimezone é o fuso de exibição da equipe de vendas. O horário
// sugerido no formulário usa este relógio, não o do servidor.
const DefaultTimezone = "America/Sao_Paulo"

func location() *time.Location {
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	// Sem tzdata no host, cai no deslocamento fixo do fuso.
	return time.FixedZone("-03", -3*60*60)
}

func Now() time.Time {
	return time.Now().In(location())
}
