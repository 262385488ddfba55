package models

// Topic is identified by its slug
type Topic struct {
	Slug        string `json:"slug" db:"slug"`
	Description string `json:"description" db:"description"`
	ImgURL      string `json:"img_url" db:"img_url"`
}
