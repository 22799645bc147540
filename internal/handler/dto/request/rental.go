package request

// RentalRequest is the body of both rental issuance and returns.
type RentalRequest struct {
	CustomerID string `json:"customerId" binding:"required,uuid"`
	MovieID    string `json:"movieId" binding:"required,uuid"`
}
