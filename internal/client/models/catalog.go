package models

// Suggestion is a search hit shown while the user types.
type Suggestion struct {
	ID        ID     `json:"id" validate:"required"`
	Name      string `json:"name"`
	Place     string `json:"place"`
	Thumbnail string `json:"thumbnail"`
}

type SeasonRef struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

type Author struct {
	FirstName string `json:"firstName"`
}

type EventRef struct {
	ID   ID      `json:"id"`
	Name string  `json:"name"`
	User *Author `json:"user,omitempty"`
}

// Media is a purchasable video belonging to an event.
type Media struct {
	ID          ID        `json:"id" validate:"required"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Thumbnail   string    `json:"thumbnail"`
	Resolution  Text      `json:"resolution"`
	Length      Text      `json:"length"`
	FileSize    Text      `json:"fileSize"`
	Price       Price     `json:"price" validate:"gte=0"`
	IsNew       bool      `json:"isNew"`
	Event       *EventRef `json:"event,omitempty"`
}

type Event struct {
	ID          ID         `json:"id" validate:"required"`
	Name        string     `json:"name"`
	Place       string     `json:"place"`
	Description string     `json:"description"`
	Banner      string     `json:"banner"`
	Thumbnail   string     `json:"thumbnail"`
	Price       Price      `json:"price" validate:"gte=0"`
	CreatedAt   string     `json:"createdAt"`
	Season      *SeasonRef `json:"season,omitempty"`
	Medias      []Media    `json:"medias" validate:"dive"`
}

type Season struct {
	ID          ID      `json:"id" validate:"required"`
	Name        string  `json:"name"`
	Place       string  `json:"place"`
	Description string  `json:"description"`
	Banner      string  `json:"banner"`
	Thumbnail   string  `json:"thumbnail"`
	Price       Price   `json:"price" validate:"gte=0"`
	CreatedAt   string  `json:"createdAt"`
	Events      []Event `json:"events" validate:"dive"`
}
