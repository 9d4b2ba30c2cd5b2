package dto

type AppointmentClientRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateAppointmentRequest struct {
	Day      string                   `json:"day"`
	Time     string                   `json:"time"`
	Duration Minutes                  `json:"duration"`
	Location string                   `json:"location"`
	Client   AppointmentClientRequest `json:"client"`
	Note     string                   `json:"note"`
}
