package domain

import "encoding/json"

// Summary is the fleet overview card.
type Summary struct {
	TotalTrucks              int `json:"totalTrucks"`
	TotalPendingDeliveries   int `json:"totalPendingDeliveries"`
	TotalCompletedDeliveries int `json:"totalCompletedDeliveries"`
}

// FinancialSummary totals delivery values over three periods.
type FinancialSummary struct {
	TotalValueToday Amount `json:"totalValueToday"`
	TotalValueWeek  Amount `json:"totalValueWeek"`
	TotalValueMonth Amount `json:"totalValueMonth"`
}

// Alerts lists deliveries needing attention. Only the counts are displayed,
// so entries are kept undecoded.
type Alerts struct {
	ValuableDeliveries          []json.RawMessage `json:"valuableDeliveries"`
	ElectronicsWithoutInsurance []json.RawMessage `json:"electronicsWithoutInsurance"`
	DangerousDeliveries         []json.RawMessage `json:"dangerousDeliveries"`
}
