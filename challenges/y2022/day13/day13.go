// Package day13 solves 2022 day 13, Distress Signal: ordering nested lists.
package day13

import (
	_ "embed"
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/aoc/input"
	"github.com/katalvlaran/aoc/puzzle"
)

var (
	//go:embed sample.txt
	sample string
	//go:embed puzzle.toml
	manifest string
)

// Day is the registered puzzle.
var Day = puzzle.MustDay(2022, 13, "Distress Signal", Part1, Part2, sample, manifest)

// packet is either an integer or a list of packets.
type packet struct {
	value int
	list  []packet
	isInt bool
}

// UnmarshalJSON decodes a number or an array.
func (p *packet) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		p.isInt = false
		p.list = []packet{}
		return json.Unmarshal(data, &p.list)
	}
	p.isInt = true
	return json.Unmarshal(data, &p.value)
}

// compare orders packets: integers numerically, lists element by element
// and then by length, and a mixed pair by wrapping the integer in a list.
func compare(a, b packet) int {
	switch {
	case a.isInt && b.isInt:
		return a.value - b.value
	case a.isInt:
		return compare(packet{list: []packet{a}}, b)
	case b.isInt:
		return compare(a, packet{list: []packet{b}})
	}
	for i := 0; i < len(a.list) && i < len(b.list); i++ {
		if c := compare(a.list[i], b.list[i]); c != 0 {
			return c
		}
	}
	return len(a.list) - len(b.list)
}

func parsePacket(s string) (packet, error) {
	var p packet
	if err := json.Unmarshal([]byte(s), &p); err != nil {
		return packet{}, errors.Wrapf(err, "packet %q", s)
	}
	return p, nil
}

// Part1 sums the 1-based indices of pairs already in the right order.
func Part1(in string, _ puzzle.Params) (string, error) {
	sum := 0
	for i, block := range input.Blocks(in) {
		if len(block) != 2 {
			return "", errors.Newf("pair %d: want 2 packets, got %d", i+1, len(block))
		}
		left, err := parsePacket(block[0])
		if err != nil {
			return "", err
		}
		right, err := parsePacket(block[1])
		if err != nil {
			return "", err
		}
		if compare(left, right) < 0 {
			sum += i + 1
		}
	}
	return strconv.Itoa(sum), nil
}

// Part2 sorts every packet with the dividers [[2]] and [[6]] and multiplies
// the dividers' 1-based positions.
func Part2(in string, _ puzzle.Params) (string, error) {
	var packets []packet
	for _, l := range input.Lines(in) {
		if l == "" {
			continue
		}
		p, err := parsePacket(l)
		if err != nil {
			return "", err
		}
		packets = append(packets, p)
	}
	// Only the dividers' positions matter, so count the packets below each
	// rather than sorting.
	two, _ := parsePacket("[[2]]")
	six, _ := parsePacket("[[6]]")
	before2, before6 := 1, 2
	for _, p := range packets {
		if compare(p, two) < 0 {
			before2++
		}
		if compare(p, six) < 0 {
			before6++
		}
	}
	return strconv.Itoa(before2 * before6), nil
}
