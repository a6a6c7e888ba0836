package board_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zayadnimrod/fairychess/board"
)

func TestLoadScenario(t *testing.T) {
	Convey("Loading a board scenario from YAML", t, func() {
		Convey("A rect scenario builds a RectBoard", func() {
			b, err := board.LoadScenario([]byte(`
kind: rect
x_min: 0
x_max: 7
y_min: 0
y_max: 7
`))
			So(err, ShouldBeNil)
			So(b, ShouldNotBeNil)
			So(b.TileAt(0, 0), ShouldEqual, board.Empty)
			So(b.TileAt(8, 0), ShouldEqual, board.Impassable)
		})

		Convey("A grid scenario builds a GridBoard", func() {
			b, err := board.LoadScenario([]byte(`
kind: grid
empty:
  - [1, 1]
  - [2, 2]
`))
			So(err, ShouldBeNil)
			So(b.TileAt(1, 1), ShouldEqual, board.Empty)
			So(b.TileAt(0, 0), ShouldEqual, board.Impassable)
		})

		Convey("A predicate scenario builds a PredicateBoard", func() {
			b, err := board.LoadScenario([]byte(`
kind: predicate
expression: x == y
`))
			So(err, ShouldBeNil)
			So(b.TileAt(3, 3), ShouldEqual, board.Empty)
			So(b.TileAt(3, 4), ShouldEqual, board.Impassable)
		})

		Convey("A rect scenario with x_max < x_min is rejected", func() {
			_, err := board.LoadScenario([]byte(`
kind: rect
x_min: 5
x_max: 0
y_min: 0
y_max: 7
`))
			So(err, ShouldNotBeNil)
		})

		Convey("A grid scenario with no empty tiles is rejected", func() {
			_, err := board.LoadScenario([]byte(`
kind: grid
empty: []
`))
			So(err, ShouldNotBeNil)
		})

		Convey("An unknown kind is rejected", func() {
			_, err := board.LoadScenario([]byte(`kind: spiral`))
			So(err, ShouldNotBeNil)
		})

		Convey("Malformed YAML is rejected", func() {
			_, err := board.LoadScenario([]byte("kind: [unterminated"))
			So(err, ShouldNotBeNil)
		})
	})
}
