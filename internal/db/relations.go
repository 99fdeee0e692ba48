package db

// PostCategory is the typed join row linking a post to a category. The pair is
// the composite primary key, so duplicate links are rejected by the schema.
type PostCategory struct {
	PostID     uint `gorm:"primaryKey;autoIncrement:false"`
	CategoryID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName keeps the join table name stable regardless of pluralization.
func (PostCategory) TableName() string {
	return "post_categories"
}

// PostTag is the typed join row linking a post to a tag.
type PostTag struct {
	PostID uint `gorm:"primaryKey;autoIncrement:false"`
	TagID  uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName keeps the join table name stable regardless of pluralization.
func (PostTag) TableName() string {
	return "post_tags"
}
