// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package variantget

import (
	"strconv"
	"strings"

	"github.com/matrixorigin/variant/pkg/common/moerr"
	"github.com/matrixorigin/variant/pkg/common/util"
)

type pathElemType byte

const (
	pathField pathElemType = iota + 1
	pathIndex
)

// PathElem is one navigation step: an object field selected by name or
// a list element selected by position.
type PathElem struct {
	tp    pathElemType
	name  string
	index int
}

// Field selects the value bound to name in an object.
func Field(name string) PathElem {
	return PathElem{tp: pathField, name: name}
}

// Index selects the element at the zero-based position in a list.
func Index(i int) PathElem {
	return PathElem{tp: pathIndex, index: i}
}

func (e PathElem) IsField() bool {
	return e.tp == pathField
}

func (e PathElem) Name() string {
	return e.name
}

func (e PathElem) Index() int {
	return e.index
}

// Path is an immutable sequence of accessors. The empty path selects
// the whole value. No validation happens at construction; an accessor
// that cannot be resolved surfaces later as a per-row null.
type Path struct {
	elems []PathElem
}

func NewPath(elems ...PathElem) Path {
	cp := make([]PathElem, len(elems))
	copy(cp, elems)
	return Path{elems: cp}
}

func (p Path) Len() int {
	return len(p.elems)
}

func (p Path) At(i int) PathElem {
	return p.elems[i]
}

func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('$')
	for _, e := range p.elems {
		if e.tp == pathField {
			sb.WriteByte('.')
			sb.WriteString(e.name)
		} else {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(e.index))
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

type pathGenerator struct {
	pathStr string
	pos     int
}

func (pg *pathGenerator) hasNext() bool {
	return pg.pos < len(pg.pathStr)
}

func (pg *pathGenerator) next() byte {
	b := pg.pathStr[pg.pos]
	pg.pos++
	return b
}

func (pg *pathGenerator) peek() byte {
	return pg.pathStr[pg.pos]
}

// ParsePath parses the string form of a path: `$` followed by `.name`
// and `[index]` steps, e.g. `$.top_level_field.inner_field` or
// `$.items[2]`.
func ParsePath(path string) (Path, error) {
	pg := &pathGenerator{pathStr: strings.TrimSpace(path)}
	badPath := func() (Path, error) {
		return Path{}, moerr.NewInvalidInputNoCtx("invalid path '%s'", util.Abbreviate(path, 64))
	}
	if !pg.hasNext() || pg.next() != '$' {
		return badPath()
	}
	var elems []PathElem
	for pg.hasNext() {
		switch pg.next() {
		case '.':
			start := pg.pos
			for pg.hasNext() && pg.peek() != '.' && pg.peek() != '[' {
				pg.pos++
			}
			if pg.pos == start {
				return badPath()
			}
			elems = append(elems, Field(pg.pathStr[start:pg.pos]))
		case '[':
			start := pg.pos
			for pg.hasNext() && pg.peek() != ']' {
				pg.pos++
			}
			if !pg.hasNext() {
				return badPath()
			}
			idx, err := strconv.Atoi(pg.pathStr[start:pg.pos])
			if err != nil || idx < 0 {
				return badPath()
			}
			pg.pos++ // consume ']'
			elems = append(elems, Index(idx))
		default:
			return badPath()
		}
	}
	return NewPath(elems...), nil
}
