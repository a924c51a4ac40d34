package dto

type TripRequest struct {
	Start  string `json:"start"`
	Finish string `json:"finish"`
}

type FuelStopResponse struct {
	Name               string  `json:"name"`
	Address            string  `json:"address"`
	City               string  `json:"city"`
	State              string  `json:"state"`
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
	FuelNeededGallons  float64 `json:"fuel_needed_gallons"`
	TotalCost          float64 `json:"total_cost"`
	MilesTraveled      float64 `json:"miles_traveled"`
}

type TripResponse struct {
	TotalDistanceMiles  float64            `json:"total_distance_miles"`
	EstimatedTravelTime string             `json:"estimated_travel_time"`
	FuelStops           []FuelStopResponse `json:"fuel_stops"`
	TotalFuelCost       float64            `json:"total_fuel_cost"`
	Warnings            []string           `json:"warnings,omitempty"`
}

type LocationResponse struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
