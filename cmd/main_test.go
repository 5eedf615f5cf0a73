package main

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/luca-patrignani/tens/config"
	"github.com/luca-patrignani/tens/domain/deck"
	"github.com/luca-patrignani/tens/domain/tens"
)

// dealtBoard returns the board of a seeded game.
func dealtBoard(t *testing.T) *tens.Board {
	t.Helper()
	b := tens.NewBoard()
	if err := b.NewGame(deck.SeededStream([]byte("board"))); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestParseSelection(t *testing.T) {
	b := dealtBoard(t)
	tests := []struct {
		in   string
		want []int
	}{
		{"0 4", []int{0, 4}},
		{"1,2, 3 ,12", []int{1, 2, 3, 12}},
		{"  7\t9 ", []int{7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseSelection(tt.in, b)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSelection(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSelectionByCard(t *testing.T) {
	b := dealtBoard(t)
	c0, _ := b.CardAt(0)
	c5, _ := b.CardAt(5)
	// rank-first and suit-first notation may be mixed
	suit := c5.Suit()
	suitFirst := "CDHS"[suit:suit+1] + strings.Replace(c5.Rank().String(), "10", "T", 1)
	got, err := parseSelection(c0.Code()+" "+suitFirst, b)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 5}; !reflect.DeepEqual(got, want) {
		t.Fatalf("parseSelection(%q) = %v, want %v", c0.Code()+" "+suitFirst, got, want)
	}
}

func TestParseSelectionInvalid(t *testing.T) {
	b := dealtBoard(t)
	for _, in := range []string{"", "  ", "a b", "1 x", "3 ZZ"} {
		if _, err := parseSelection(in, b); err == nil {
			t.Errorf("expected error parsing %q", in)
		}
	}
}

func TestParseSelectionCardNotOnBoard(t *testing.T) {
	b := dealtBoard(t)
	var missing tens.Card
	for raw := 1; raw <= tens.DeckSize; raw++ {
		c, err := tens.IntToCard(raw)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := b.IndexOf(c); !ok {
			missing = c
			break
		}
	}
	if _, err := parseSelection(missing.Code(), b); err == nil {
		t.Fatalf("expected error selecting %s", missing.Code())
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{Rules: tens.Rules{}, Seed: "sim"}
	r1, err := simulate(cfg, 20, logger)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := simulate(cfg, 20, logger)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Fatalf("expected identical results, got %v and %v", r1, r2)
	}
	if r1[tens.Won]+r1[tens.Stuck] != 20 {
		t.Fatalf("expected 20 finished games, got %v", r1)
	}
}

func TestSimulationTable(t *testing.T) {
	data := simulationTable(map[tens.Status]int{tens.Won: 1, tens.Stuck: 3}, 4)
	want := [][]string{
		{"Result", "Games", "Share"},
		{"won", "1", "25.0%"},
		{"stuck", "3", "75.0%"},
	}
	if !reflect.DeepEqual([][]string(data), want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}
