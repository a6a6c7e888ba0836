package transport_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zayadnimrod/fairychess/piececache"
	"github.com/zayadnimrod/fairychess/transport"
)

func TestEvaluateReachable(t *testing.T) {
	req := transport.CheckRequest{
		Notation: "[1,2]|-/",
		Scenario: []byte("kind: rect\nx_min: 0\nx_max: 7\ny_min: 0\ny_max: 7\n"),
		Start:    [2]int{4, 4},
		Target:   [2]int{5, 6},
	}

	resp := transport.Evaluate(piececache.New(), req)
	assert.True(t, resp.Reachable)
	assert.Equal(t, [][2]int{{4, 4}, {5, 6}}, resp.Path)
	assert.Empty(t, resp.Error)
}

func TestEvaluateUnreachable(t *testing.T) {
	req := transport.CheckRequest{
		Notation: "[1,2]|-/",
		Scenario: []byte("kind: rect\nx_min: 0\nx_max: 7\ny_min: 0\ny_max: 7\n"),
		Start:    [2]int{4, 4},
		Target:   [2]int{4, 5},
	}

	resp := transport.Evaluate(piececache.New(), req)
	assert.False(t, resp.Reachable)
	assert.Empty(t, resp.Error)
}

func TestEvaluateBadNotationReportsError(t *testing.T) {
	req := transport.CheckRequest{Notation: "[0,0]"}
	resp := transport.Evaluate(piececache.New(), req)
	assert.NotEmpty(t, resp.Error)
}

func TestEvaluateBadScenarioReportsError(t *testing.T) {
	req := transport.CheckRequest{Notation: "[1,0]", Scenario: []byte("kind: bogus")}
	resp := transport.Evaluate(piececache.New(), req)
	assert.NotEmpty(t, resp.Error)
}
