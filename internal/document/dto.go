package document

type RegisterDocumentDTO struct {
	Name     string `json:"name"`
	FileURL  string `json:"file_url"`
	FileKey  string `json:"file_key"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type RenameDocumentDTO struct {
	Name string `json:"name"`
}
