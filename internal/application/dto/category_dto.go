package dto

// CategoryResponse una categoría del catálogo con su slug para rutas.
type CategoryResponse struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// AdminStatsResponse métricas del panel administrativo.
type AdminStatsResponse struct {
	TotalBooks      int `json:"totalBooks"`
	TotalCategories int `json:"totalCategories"`
}
