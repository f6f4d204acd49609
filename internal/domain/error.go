package domain

// ErrorResponse é a estrutura padronizada para respostas de erro da API.
// @Description Estrutura padronizada para respostas de erro da API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"403"`
	Category string `json:"category" example:"FORBIDDEN"`
	Message  string `json:"message" example:"Acesso negado: papel necessário ausente."`
}
