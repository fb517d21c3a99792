// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
)

// Scanner invariants
//
//   position    - number of bytes consumed so far. When countIgnored is
//                 false, only OPEN and CLOSE bytes are counted.
//   floor       - count of OPEN minus count of CLOSE consumed so far.
//   found       - latch. Clear until the first CLOSE that lands on the
//                 Basement floor, set forever after.
//   basementPos - the position at the moment found was set, zero while
//                 found is clear.
//
// Once found is set, later visits to the Basement do not move basementPos.
// The floor and position keep updating regardless of the latch.

type Scanner struct {
	name        string // name of the input source
	floor       int
	position    int
	found       bool
	basementPos int

	countIgnored bool
	onBasement   func(position int)

	// logging
	ctx    context.Context
	logger *slog.Logger
}

// Result is a snapshot of the scanner state.
type Result struct {
	Floor           int // current floor
	Position        int // bytes consumed
	BasementReached bool
	Basement        int // 1-based position of the first visit to the basement, if BasementReached
}

func NewScanner(ctx context.Context, name string, options ...Option) (*Scanner, error) {
	cfg := Config{
		countIgnored: true,
	}
	for _, option := range options {
		if err := option(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Scanner{
		name:         name,
		countIgnored: cfg.countIgnored,
		onBasement:   cfg.onBasement,
		ctx:          ctx,
		logger:       cfg.logger,
	}, nil
}

// Step consumes a single byte and reports whether it tripped the latch.
func (s *Scanner) Step(ch byte) bool {
	kind := Classify(ch)
	if kind != Ignored || s.countIgnored {
		s.position++
	}
	switch kind {
	case Up:
		s.floor++
	case Down:
		s.floor--
		if !s.found && s.floor == Basement {
			s.found, s.basementPos = true, s.position
			s.logger.Debug("scanner: reached basement", "source", s.name, "position", s.position)
			if s.onBasement != nil {
				s.onBasement(s.position)
			}
			return true
		}
	}
	return false
}

// Result returns the current state of the scan.
func (s *Scanner) Result() Result {
	return Result{
		Floor:           s.floor,
		Position:        s.position,
		BasementReached: s.found,
		Basement:        s.basementPos,
	}
}

// Scan consumes r until end of input. Errors from r, other than io.EOF,
// stop the scan and are returned along with the state reached so far.
func (s *Scanner) Scan(r io.Reader) (Result, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	for {
		if br.Buffered() == 0 {
			if err := s.ctx.Err(); err != nil {
				return s.Result(), err
			}
		}
		ch, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return s.Result(), err
		}
		s.Step(ch)
	}
	result := s.Result()
	s.logger.Debug("scanner: completed",
		"source", s.name,
		"floor", result.Floor,
		"position", result.Position,
		"basement", result.BasementReached)
	return result, nil
}

// ScanBytes scans an in-memory input with the default options.
func ScanBytes(input []byte) Result {
	s := &Scanner{countIgnored: true, ctx: context.Background(), logger: slog.New(slog.DiscardHandler)}
	for _, ch := range input {
		s.Step(ch)
	}
	return s.Result()
}
