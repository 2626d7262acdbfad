package model

import "decor/shared/model"

const (
	TableName  = "moments"
	EntityName = "moment"

	FieldID    = "id"
	FieldName  = "name"
	FieldType  = "type"
	FieldImage = "image"

	DefaultType = "General"
)

type Moment struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Type  string `db:"type"`
	Image string `db:"image"`
	model.Metadata
}
