package health

import "time"

type Input struct{}

type Output struct {
	Body Response
}

// Response - состояние сервера и количество записей в хранилище
type Response struct {
	Status    string    `json:"status" example:"OK" doc:"OK ou DEGRADED"`
	Purchases int       `json:"compras" doc:"Quantidade de compras armazenadas"`
	Services  int       `json:"servicos" doc:"Quantidade de serviços armazenados"`
	Time      time.Time `json:"time" doc:"Hora do servidor (UTC)"`
}
