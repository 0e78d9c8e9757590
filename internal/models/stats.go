package models

type AdminStats struct {
	TotalStores   int `json:"total_stores"`
	TotalProducts int `json:"total_products"`
}

type AdminOverview struct {
	Stats    AdminStats `json:"stats"`
	Stores   []*Vendor  `json:"stores"`
	Products []*Product `json:"products"`
}
