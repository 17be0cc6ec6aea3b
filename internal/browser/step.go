package browser

import (
	"context"
	"fmt"

	"github.com/Muxutruk2/gemini/internal/gemini"
)

// OutcomeKind discriminates the Outcome variants.
type OutcomeKind int

const (
	// OutcomeNext instructs the caller to feed Next straight back into
	// Step (redirects and input replies).
	OutcomeNext OutcomeKind = iota

	// OutcomeDisplay hands Document to the caller for rendering; the
	// caller picks the next target before stepping again.
	OutcomeDisplay

	// OutcomeQuit ends the navigation loop. It accompanies every fatal
	// error returned by Step.
	OutcomeQuit
)

// Outcome is the closed result of one navigation step.
type Outcome struct {
	Kind     OutcomeKind
	Next     gemini.Location  // set when Kind is OutcomeNext
	Document *gemini.Response // set when Kind is OutcomeDisplay
}

// Step runs one navigation step for the target location: append it to
// history, fetch and parse, route on the status class. Transport and
// parse failures are fatal; there are no retries.
func (s *Session) Step(ctx context.Context, target gemini.Location) (Outcome, error) {
	s.history = append(s.history, target)
	s.current = target
	s.logger.Debug("fetching", "url", target.String())

	raw, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("fetch %s: %w", target, err)
	}

	resp, err := gemini.ParseResponse(raw)
	if err != nil {
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("response from %s: %w", target, err)
	}
	s.logger.Debug("response", "code", resp.Code, "class", resp.Class.String(), "meta", resp.Meta)

	if s.recorder != nil {
		if err := s.recorder.Record(ctx, target, resp.Code, resp.Meta); err != nil {
			s.logger.Warn("could not record visit", "error", err)
		}
	}

	switch resp.Class {
	case gemini.ClassInput:
		return s.stepInput(resp)
	case gemini.ClassSuccess:
		s.lastWorking = target
		s.hasLastWorking = true
		s.redirects = 0
		return Outcome{Kind: OutcomeDisplay, Document: resp}, nil
	case gemini.ClassRedirect:
		return s.stepRedirect(resp)
	case gemini.ClassTemporaryFailure, gemini.ClassPermanentFailure, gemini.ClassCertificateRequired:
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("%w: %s", ErrServerFailure, resp.Meta)
	default:
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("%w: %d", ErrUnknownStatus, resp.Code)
	}
}

// stepInput answers an input response: prompt the user (echoed for
// status 10, masked for the rest of the input range) and refetch the
// requesting location with the reply in its query component.
func (s *Session) stepInput(resp *gemini.Response) (Outcome, error) {
	if s.prompter == nil {
		return Outcome{Kind: OutcomeQuit}, ErrInputNotSupported
	}

	cur, err := s.Current()
	if err != nil {
		return Outcome{Kind: OutcomeQuit}, err
	}

	prompt := resp.Meta + " "
	var reply string
	if resp.Code == gemini.StatusInputVisible {
		reply, err = s.prompter.Line(prompt)
	} else {
		reply, err = s.prompter.Secret(prompt)
	}
	if err != nil {
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("read input: %w", err)
	}

	return Outcome{Kind: OutcomeNext, Next: cur.WithQuery(reply)}, nil
}

// stepRedirect follows a redirect response. The chain is bounded: once
// the counter reaches the configured maximum the session falls back to
// the last-known-good location, or terminates when none exists or when
// the fallback itself keeps redirecting.
func (s *Session) stepRedirect(resp *gemini.Response) (Outcome, error) {
	s.redirects++
	s.logger.Debug("redirect", "target", resp.Meta, "count", s.redirects)

	if s.redirects >= s.maxRedirects {
		if s.hasLastWorking && !s.current.Equal(s.lastWorking) {
			s.logger.Warn("too many redirects, returning to last working location",
				"url", s.lastWorking.String())
			return Outcome{Kind: OutcomeNext, Next: s.lastWorking}, nil
		}
		return Outcome{Kind: OutcomeQuit}, ErrTooManyRedirects
	}

	target, err := s.Resolve(resp.Meta)
	if err != nil {
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("resolve redirect: %w", err)
	}

	if target.Kind == TargetExternal {
		// A redirect chain has no "stay here" state: hand the target to
		// the opener and end the chain on the last working location.
		if s.opener != nil {
			if err := s.opener.Open(target.External); err != nil {
				s.logger.Warn("could not open external target", "error", err)
			}
		}
		if s.hasLastWorking {
			return Outcome{Kind: OutcomeNext, Next: s.lastWorking}, nil
		}
		return Outcome{Kind: OutcomeQuit}, fmt.Errorf("%w: %s", ErrForeignRedirect, resp.Meta)
	}

	return Outcome{Kind: OutcomeNext, Next: target.Location}, nil
}
