package models

type Restaurant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	ThemeColor string `json:"theme_color"`
	Category   string `json:"category"`
	Website    string `json:"website"`
}
