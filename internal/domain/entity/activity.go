package entity

import "time"

// Activity is one line of the dashboard's recent activity feed.
// Plant activities keep a copy of the plant so the client can open it
// without a second lookup.
type Activity struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Time             string    `json:"time"`
	CreatedAt        time.Time `json:"createdAt"`
	IsPlant          bool      `json:"isPlant"`
	PlantID          string    `json:"plantId,omitempty"`
	PlantName        string    `json:"plantName,omitempty"`
	PlantType        string    `json:"plantType,omitempty"`
	PlantDescription string    `json:"plantDescription,omitempty"`
	PlantPrice       float64   `json:"plantPrice,omitempty"`
	PlantImageURL    string    `json:"plantImageUrl,omitempty"`
}
