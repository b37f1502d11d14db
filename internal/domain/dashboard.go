package domain

// Dashboard is the summary served on GET /dashboard.
type Dashboard struct {
	Categories int `json:"categories"`
	Produits   int `json:"produits"`
}
