// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvkernel/core"
	"github.com/katalvlaran/lvkernel/internal/fixtures"
)

// ErrUnknownFixture is returned by Fixture for a name it does not know.
var ErrUnknownFixture = errors.New("bench: unknown fixture")

var fixtureTable = map[string]func() *core.Graph{
	"g1":           fixtures.G1,
	"g2":           fixtures.G2,
	"g1_unlabeled": fixtures.G1Unlabeled,
	"g2_unlabeled": fixtures.G2Unlabeled,
}

// Fixture returns the named fixture graph.
func Fixture(name string) (*core.Graph, error) {
	build, ok := fixtureTable[name]
	if !ok {
		return nil, fmt.Errorf("Fixture(%q): %w", name, ErrUnknownFixture)
	}

	return build(), nil
}

// Fixtures resolves several names at once, failing on the first unknown one.
func Fixtures(names ...string) ([]*core.Graph, error) {
	out := make([]*core.Graph, 0, len(names))
	for _, n := range names {
		g, err := Fixture(n)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}

	return out, nil
}

// FixtureNames lists the known fixtures in sorted order.
func FixtureNames() []string {
	names := make([]string, 0, len(fixtureTable))
	for n := range fixtureTable {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}
