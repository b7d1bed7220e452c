package domain

import "time"

type Favorite struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type FavoriteStats struct {
	Count       int         `json:"count"`
	MinID       int         `json:"min_id"`
	MaxID       int         `json:"max_id"`
	AvgID       int         `json:"avg_id"`
	Generations map[int]int `json:"generations"`
	TopTypes    []TypeCount `json:"top_types"`
}
