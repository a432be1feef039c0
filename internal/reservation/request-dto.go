package reservation

// BookingRequest carries the pre-parsed values for a booking attempt
type BookingRequest struct {
	TrainID       int    `json:"train_id" validate:"required,gt=0"`
	PassengerName string `json:"passenger_name" validate:"required,min=1,max=50"`
	Age           int    `json:"age" validate:"required,gte=1,lte=120"`
}

// AddTrainRequest carries the pre-parsed values for an admin add-train action
type AddTrainRequest struct {
	TrainID    int    `json:"train_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required,min=1,max=50"`
	From       string `json:"from" validate:"required,min=1,max=30"`
	To         string `json:"to" validate:"required,min=1,max=30"`
	TotalSeats int    `json:"total_seats" validate:"required,gt=0"`
}
