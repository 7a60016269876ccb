package model

// Creator is a creator registered in the factory contract
type Creator struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	TokenAddress string `json:"tokenAddress"`
	Owner        string `json:"owner"`
}

// TokenInfo describes a creator token; amounts are in token units (18 decimals)
type TokenInfo struct {
	Balance     string `json:"balance"`
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	TotalSupply string `json:"totalSupply"`
}

// AccessStatus is the result of comparing a holder's balance with a creator's minimum
type AccessStatus struct {
	CreatorID string `json:"creatorId"`
	Address   string `json:"address"`
	HasAccess bool   `json:"hasAccess"`
	Balance   string `json:"balance"`
	Minimum   string `json:"minimum"`
}

// CreateCreatorRequest represents request for POST /creators
type CreateCreatorRequest struct {
	Name   string `json:"name" validate:"required,max=64"`
	Symbol string `json:"symbol" validate:"required,max=11,alphanum"`
}

// BuyRequest represents request for POST /creators/{id}/buy
type BuyRequest struct {
	Amount string `json:"amount" validate:"required"`
}

// TxResponse carries the hash of a submitted transaction
type TxResponse struct {
	TxHash string `json:"txHash"`
}

// CreatorProfile is everything the creator page shows
type CreatorProfile struct {
	Creator     Creator       `json:"creator"`
	Token       TokenInfo     `json:"token"`
	Minimum     string        `json:"minimumTokens"`
	Access      *AccessStatus `json:"access,omitempty"`
	Price       TokenPrice    `json:"price"`
	PriceLabel  string        `json:"priceLabel"`
	ChangeLabel string        `json:"changeLabel"`
	HoldingUSD  string        `json:"holdingUsd,omitempty"` // viewer's balance at the current price
}
