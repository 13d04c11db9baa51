package domain

// UncategorizedName is the display name of the migration-seeded fallback category
// that absorbs imported products without a mapped category. Its id is configured,
// not looked up by name.
const UncategorizedName = "uncategorized"

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:name;size:50;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}
