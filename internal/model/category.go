package model

// Category groups menu items (e.g. "Drinks", "Desserts").
// Name is unique across the whole menu (exact, case-sensitive match).
type Category struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"size:80;uniqueIndex;not null"`
	Description *string `gorm:"size:400"`

	// RESTRICT keeps the storage layer from cascading; deletion of a
	// category with items is blocked by an application-level check.
	Items []Item `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

func (Category) TableName() string { return "categories" }
