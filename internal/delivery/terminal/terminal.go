package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"dyflissan/internal/domain/player"
	apperrors "dyflissan/internal/errors"
	"dyflissan/internal/usecase/narrative"
)

type Session struct {
	engine     *narrative.Engine
	log        *zap.SugaredLogger
	in         *bufio.Reader
	out        io.Writer
	showBanner bool
}

func NewSession(engine *narrative.Engine, log *zap.SugaredLogger, in io.Reader, out io.Writer, showBanner bool) *Session {
	return &Session{
		engine:     engine,
		log:        log,
		in:         bufio.NewReader(in),
		out:        out,
		showBanner: showBanner,
	}
}

// Run plays one session until an ending is printed. An invalid choice is an
// ending like any other and is not returned as an error.
func (s *Session) Run(ctx context.Context) error {
	if s.showBanner {
		fmt.Fprintln(s.out, Banner)
	}

	state := player.NewState()
	s.log.Debugw("session started", "session", state.SessionID)

	scene, err := s.engine.Begin(state)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	for {
		for _, line := range scene.Lines {
			fmt.Fprintln(s.out, line)
		}
		if scene.Ended() {
			s.log.Infow("session finished", "session", state.SessionID, "ending", scene.At.ID, "steps", len(state.Path))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, scene.Prompt)
		input, err := s.readLine()
		if err != nil {
			return err
		}

		scene, err = s.engine.Choose(state, scene.At, input)
		if err != nil && !errors.Is(err, apperrors.ErrInvalidChoice) {
			return err
		}
	}
}

// readLine returns one line without its line ending. Lines have no length
// limit; an over-long answer is just another unrecognized choice.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", apperrors.ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
