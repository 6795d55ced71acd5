package domain

// Destination is an entry of the address catalog deliveries are sent to.
type Destination struct {
	ID    int    `json:"id"`
	Local string `json:"local"`
}

// CargoType is an entry of the cargo catalog.
type CargoType struct {
	ID   int    `json:"id"`
	Tipo string `json:"tipo"`
}
