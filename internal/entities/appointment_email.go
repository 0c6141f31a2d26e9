package entities

type AppointmentEmailData struct {
	ClientName    string
	ServiceName   string
	DateFormatted string
	TimeFormatted string
	Status        string
	SalonName     string
	CurrentYear   int
}
