package todostore

// listDocument is the persisted shape of a to-do list. The _id is the
// list's external identifier, not an ObjectID.
type listDocument struct {
	ID    string         `bson:"_id"`
	Name  string         `bson:"name"`
	Items []itemDocument `bson:"items"`
}

// itemDocument is an element of listDocument.Items.
type itemDocument struct {
	ID    string `bson:"id"`
	Label string `bson:"label"`
	Done  bool   `bson:"done"`
}

// summaryDocument is the projected shape returned when listing. The item
// count is computed by the server so item bodies never leave the store.
type summaryDocument struct {
	ID        string `bson:"_id"`
	Name      string `bson:"name"`
	ItemCount int    `bson:"item_count"`
}
