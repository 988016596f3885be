package deck

type CreateDeckDTO struct {
	Name string `json:"name"`
}

type RenameDeckDTO struct {
	Name string `json:"name"`
}
