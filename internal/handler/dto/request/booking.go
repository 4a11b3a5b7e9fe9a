package request

type CustomerRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	CardLast4 string `json:"cardLast4" binding:"required,cardlast4"`
}

type CreateBookingRequest struct {
	ShowtimeID string          `json:"showtimeId" binding:"required"`
	Seats      []string        `json:"seats" binding:"required,min=1,dive,required"`
	Customer   CustomerRequest `json:"customer" binding:"required"`
}
