// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package evaluation

import (
	"bytes"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	defErr "sm3lab/defErr"
)

/*
DigestIndex maps every digest seen during a run to the first message that
produced it, so a collision between any two messages of the run is caught,
not only between the two halves of a pair.

	An empty path keeps the index in memory, otherwise it lives in a leveldb
	directory and survives across runs.
*/
type DigestIndex struct {
	db      *leveldb.DB
	entries int
}

func OpenDigestIndex(path string) (*DigestIndex, error) {
	var (
		db  *leveldb.DB
		err error
	)
	if path == `` {
		db, err = leveldb.Open(storage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, defErr.DescribeThenConcat(`open digest index`, err)
	}
	return &DigestIndex{db: db}, nil
}

/*
Record stores msg under digest.

	hit reports that a different message already owns digest, prev is that message.
	Recording the same message twice is not a collision.
*/
func (idx *DigestIndex) Record(digest, msg []byte) (prev []byte, hit bool, err error) {
	prev, err = idx.db.Get(digest, nil)
	switch {
	case err == nil:
		return prev, !bytes.Equal(prev, msg), nil
	case !errors.Is(err, leveldb.ErrNotFound):
		return nil, false, defErr.DescribeThenConcat(`digest index lookup`, err)
	}
	if err = idx.db.Put(digest, msg, nil); err != nil {
		return nil, false, defErr.DescribeThenConcat(`digest index insert`, err)
	}
	idx.entries++
	return nil, false, nil
}

// distinct digests inserted through this handle.
func (idx *DigestIndex) Len() int { return idx.entries }

func (idx *DigestIndex) Close() error { return idx.db.Close() }
