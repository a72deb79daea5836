package controllers

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrRestaurantNotFound = &CustomError{"Restaurant not found"}
	ErrInvalidCredentials = &CustomError{"Invalid credentials"}
	ErrOrderNotFound      = &CustomError{"Order not found"}
	ErrMenuItemNotFound   = &CustomError{"Menu item not found"}
	ErrItemUnavailable    = &CustomError{"Menu item is not available"}
	ErrUnknownCategory    = &CustomError{"Unknown category"}
	ErrInvalidStatus      = &CustomError{"Invalid order status"}
	ErrIllegalTransition  = &CustomError{"Illegal order status transition"}
)
