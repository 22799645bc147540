package request

type GenreRequest struct {
	Name string `json:"name" binding:"required,min=5,max=50"`
}

// MovieRequest mirrors the client contract: the genre is referenced by id and
// the rate is a decimal amount.
type MovieRequest struct {
	Title           string   `json:"title" binding:"required,min=5,max=255"`
	GenreID         string   `json:"genreId" binding:"required,uuid"`
	NumberInStock   *int     `json:"numberInStock" binding:"required,min=0,max=255"`
	DailyRentalRate *float64 `json:"dailyRentalRate" binding:"required,gt=0,lte=255"`
}

type CustomerRequest struct {
	Name   string `json:"name" binding:"required,min=5,max=50"`
	Phone  string `json:"phone" binding:"required,min=5,max=50"`
	IsGold bool   `json:"isGold"`
}
