// Copyright 2025 Mediashelf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// IDMUS is the MUS serializer for ID values.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	return ID(num), n, err
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// MediaRecordMUS is the MUS serializer for MediaRecord values.
// CreatedAt is encoded as Unix microseconds and restored in UTC.
var MediaRecordMUS = mediaRecordMUS{}

type mediaRecordMUS struct{}

func (s mediaRecordMUS) Marshal(v MediaRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += varint.Int64.Marshal(v.OriginMessageID, bs[n:])
	n += ord.String.Marshal(string(v.Kind), bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Course, bs[n:])
	n += ord.String.Marshal(v.ExtractedBy, bs[n:])
	n += ord.String.Marshal(v.PayloadRef, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UTC().UnixMicro(), bs[n:])
	return n
}

func (s mediaRecordMUS) Unmarshal(bs []byte) (v MediaRecord, n int, err error) {
	var n1 int
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return v, n, err
	}
	v.OriginMessageID, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	var kind string
	kind, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.Kind = MediaKind(kind)
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.Course, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.ExtractedBy, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.PayloadRef, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	var createdAt int64
	createdAt, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return v, n, err
	}
	v.CreatedAt = time.UnixMicro(createdAt).UTC()
	return v, n, nil
}

func (s mediaRecordMUS) Size(v MediaRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += varint.Int64.Size(v.OriginMessageID)
	size += ord.String.Size(string(v.Kind))
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Course)
	size += ord.String.Size(v.ExtractedBy)
	size += ord.String.Size(v.PayloadRef)
	size += varint.Int64.Size(v.CreatedAt.UTC().UnixMicro())
	return size
}
