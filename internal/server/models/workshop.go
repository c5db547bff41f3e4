package models

type Workshop struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Day         string `json:"day"`
	Schedule    string `json:"schedule"`
	Capacity    int    `json:"capacity"`
	Image       string `json:"image,omitempty"`
}
