//go:build !windows

package app

// DefaultStore returns the configured association table. There is no system
// association database to consult outside Windows.
func DefaultStore(table *TableStore) AssociationStore {
	if table == nil {
		return NewTableStore(nil)
	}
	return table
}
