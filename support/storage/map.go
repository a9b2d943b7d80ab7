// Package storage provides the ordered key/value maps that pallets keep their
// state in. Each pallet owns its own maps; there is no shared or global store.
package storage

import (
	"github.com/advanderveer/pallets/support"
	iradix "github.com/hashicorp/go-immutable-radix"
)

//entry keeps the typed key next to the value so iteration can hand it back
type entry[K, V any] struct {
	k K
	v V
}

//Map is an ordered map from account identifiers to values. It is backed by an
//immutable radix tree so taking a snapshot is constant-time and a snapshot is
//never affected by later writes.
type Map[K support.AccountID, V any] struct {
	tree *iradix.Tree
}

//NewMap creates an empty map
func NewMap[K support.AccountID, V any]() *Map[K, V] {
	return &Map[K, V]{tree: iradix.New()}
}

//Get the value at key 'k', ok is false if it was never inserted
func (m *Map[K, V]) Get(k K) (v V, ok bool) {
	raw, ok := m.tree.Get(k.Key())
	if !ok {
		return v, false
	}

	return raw.(entry[K, V]).v, true
}

//Insert sets 'k' to 'v', replacing any existing value
func (m *Map[K, V]) Insert(k K, v V) {
	m.tree, _, _ = m.tree.Insert(k.Key(), entry[K, V]{k: k, v: v})
}

//Len returns the number of keys
func (m *Map[K, V]) Len() int { return m.tree.Len() }

//Each calls f for every key in order, it stops at the first error
func (m *Map[K, V]) Each(f func(k K, v V) error) (err error) {
	m.tree.Root().Walk(func(_ []byte, raw interface{}) bool {
		e := raw.(entry[K, V])
		err = f(e.k, e.v)
		return err != nil
	})

	return
}

//Snapshot returns a point-in-time copy of the map
func (m *Map[K, V]) Snapshot() *Map[K, V] {
	return &Map[K, V]{tree: m.tree}
}

//Txn starts a batch of writes that only become visible in the map once
//committed. Reads through the txn observe its own writes.
func (m *Map[K, V]) Txn() *Txn[K, V] {
	return &Txn[K, V]{m: m, txn: m.tree.Txn()}
}

//Txn is a batch of writes against a map
type Txn[K support.AccountID, V any] struct {
	m   *Map[K, V]
	txn *iradix.Txn
}

//Get reads 'k' including any uncommitted write to it
func (tx *Txn[K, V]) Get(k K) (v V, ok bool) {
	raw, ok := tx.txn.Get(k.Key())
	if !ok {
		return v, false
	}

	return raw.(entry[K, V]).v, true
}

//Insert writes 'v' at 'k' within the txn
func (tx *Txn[K, V]) Insert(k K, v V) {
	tx.txn.Insert(k.Key(), entry[K, V]{k: k, v: v})
}

//Commit makes all writes visible in the map at once
func (tx *Txn[K, V]) Commit() {
	tx.m.tree = tx.txn.Commit()
}
