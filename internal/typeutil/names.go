// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package typeutil

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/subs/types"
)

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = formatVarName(i)
	}
}

func formatVarName(i int) string {
	letter := string(rune('a' + i%26))
	if i < 26 {
		return letter
	}
	return letter + strconv.Itoa(i/26)
}

func varName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return formatVarName(i)
}

// NameVars assigns names `a`, `b`, ... to each unnamed generalized flexible type-variable and
// each unnamed recursion variable reachable from v, skipping names which are already taken by
// other type-variables within v. Names are assigned in traversal order.
func (t *Table) NameVars(v types.Var) {
	taken := set.New[string](8)
	var unnamed, visited []types.Var
	t.collectNames(t.RootKey(v), taken, &unnamed, &visited)

	i := 0
	for _, root := range unnamed {
		name := varName(i)
		for taken.Contains(name) {
			i++
			name = varName(i)
		}
		i++
		d := &t.entries[root].desc
		switch c := d.Content.(type) {
		case types.FlexVar:
			d.Content = types.FlexVar{Name: name}
		case types.RecursionVar:
			d.Content = types.RecursionVar{Structure: c.Structure, Name: name}
		}
	}
	for _, root := range visited {
		t.entries[root].desc.Mark = types.MarkNone
	}
}

func (t *Table) collectNames(v types.Var, taken *set.Set[string], unnamed, visited *[]types.Var) {
	d := &t.entries[v].desc
	if d.Mark == types.MarkGetVarNames {
		return
	}
	d.Mark = types.MarkGetVarNames
	*visited = append(*visited, v)
	switch c := d.Content.(type) {
	case types.FlexVar:
		if c.Name != "" {
			taken.Insert(c.Name)
		} else if d.Rank.IsGeneralized() {
			*unnamed = append(*unnamed, v)
		}
	case types.RigidVar:
		taken.Insert(c.Name)
	case types.RecursionVar:
		if c.Name != "" {
			taken.Insert(c.Name)
		} else {
			*unnamed = append(*unnamed, v)
		}
	}
	types.ContentVars(d.Content, func(child types.Var) bool {
		t.collectNames(t.RootKey(child), taken, unnamed, visited)
		return true
	})
}
