package models

// CategoryRule describes a wishlist category and the keywords that map an
// item name onto it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords,omitempty"`
}

// CategoryCatalog is the on-disk shape of the categories database.
type CategoryCatalog struct {
	Categories []CategoryRule `yaml:"categories"`
}
