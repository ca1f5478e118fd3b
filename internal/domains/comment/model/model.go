package model

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID        = "id"
	FieldObjectID  = "objectId"
	FieldComment   = "comment"
	FieldCreatedAt = "created_at"
)

// Comment is a free-text note attached to a collection object id. Rows are append-only.
type Comment struct {
	ID        string `db:"id"`
	ObjectID  string `db:"objectId"`
	Comment   string `db:"comment"`
	CreatedAt string `db:"created_at"`
}
