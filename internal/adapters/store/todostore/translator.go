package todostore

import "github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"

// toDomainList converts a persisted list to the domain aggregate. A stored
// null items array becomes an empty slice.
func toDomainList(doc *listDocument) *todolist.ToDoList {
	items := make([]todolist.Item, len(doc.Items))
	for i, it := range doc.Items {
		items[i] = todolist.Item{
			ID:    it.ID,
			Label: it.Label,
			Done:  it.Done,
		}
	}

	return &todolist.ToDoList{
		ID:    doc.ID,
		Name:  doc.Name,
		Items: items,
	}
}

func toDomainSummary(doc *summaryDocument) todolist.Summary {
	return todolist.Summary{
		ID:        doc.ID,
		Name:      doc.Name,
		ItemCount: doc.ItemCount,
	}
}

// newListDocument builds the document for a freshly created list. Items is
// always an empty array so the $size projection never sees null.
func newListDocument(id, name string) listDocument {
	return listDocument{
		ID:    id,
		Name:  name,
		Items: []itemDocument{},
	}
}

func newItemDocument(id, label string) itemDocument {
	return itemDocument{
		ID:    id,
		Label: label,
	}
}
