package model

// TokenPrice is a fiat quote for a token.
// Available is false when the index had no entry (or failed) and USD/Change24h hold fallback values.
type TokenPrice struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"change24h"`
	Available bool    `json:"available"`
}

// PriceResponse represents response for GET /prices/*
type PriceResponse struct {
	TokenPrice
	Label       string `json:"label"`
	ChangeLabel string `json:"changeLabel"`
	Direction   string `json:"direction"`
}
