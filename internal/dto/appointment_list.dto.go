package dto

type AppointmentListDTO struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Status      string  `json:"status"`
	Price       float64 `json:"price"`
	Note        string  `json:"note"`
	ClientID    uint    `json:"client_id"`
	ClientName  string  `json:"client_name"`
	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
}
