package dto

// State — штат из справочника
type State struct {
	Name         string `json:"name" example:"Illinois"`
	Abbreviation string `json:"abbreviation" example:"IL"`
}

// Department — отдел из справочника
type Department struct {
	Name string `json:"name" example:"Sales"`
}
