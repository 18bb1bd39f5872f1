package models

// StatsBucket aggregates order history over one period for the dashboard.
type StatsBucket struct {
	Period        string  `json:"period"`
	Orders        int     `json:"orders"`
	Issued        int     `json:"issued"`
	Extended      int     `json:"extended"`
	Refunded      int     `json:"refunded"`
	Revenue       float64 `json:"revenue"`
	RentalMinutes int     `json:"rental_minutes"`
}
