package models

// Vendor is one result from the vendor-search proxy.
type Vendor struct {
	ID              string  `json:"id"`
	Image           string  `json:"image"`
	Name            string  `json:"name"`
	NumberOfReviews int     `json:"numberOfReviews"`
	Location        string  `json:"location"`
	Rating          float64 `json:"rating"`
}
