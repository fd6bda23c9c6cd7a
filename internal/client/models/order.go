package models

type OrderUser struct {
	ID ID `json:"id"`
}

type OrderMedia struct {
	ID ID `json:"id"`
}

// OrderRequest is the body of POST /order. CardNumber carries digits only.
type OrderRequest struct {
	Amount         float64      `json:"amount"`
	CardHolderName string       `json:"cardHolderName"`
	CardNumber     string       `json:"cardNumber"`
	Expiration     string       `json:"expiration"`
	CVC            string       `json:"cvc"`
	User           OrderUser    `json:"user"`
	Medias         []OrderMedia `json:"medias"`
}

type OrderResponse struct {
	ID        ID   `json:"id"`
	IsSuccess bool `json:"isSuccess"`
}
