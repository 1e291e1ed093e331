// Package store holds the console's normalized in-memory state. Every slice
// is mutated only with transformer output, never with raw backend payloads,
// which keeps the normalization boundary in one place. Reads return copies
// so callers can never mutate shared state through an accessor.
package store

// Store aggregates all state slices behind one construction point.
type Store struct {
	Property  *PropertyStore
	Admins    *AdminStore
	Contracts *ContractStore
	Session   *SessionStore
}

func New() *Store {
	return &Store{
		Property:  NewPropertyStore(),
		Admins:    NewAdminStore(),
		Contracts: NewContractStore(),
		Session:   NewSessionStore(),
	}
}
