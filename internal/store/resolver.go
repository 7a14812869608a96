package store

import "strconv"

// Outcome classifies the result of resolving an identifier. Out-of-range
// positions are reported distinctly from unknown IDs so the user can
// tell a typo'd index from a typo'd ID.
type Outcome int

const (
	// Found means the identifier resolved to exactly one session.
	Found Outcome = iota
	// OutOfRange means the identifier was a position past the end of the list.
	OutOfRange
	// NotFound means no session matched the identifier.
	NotFound
)

// Resolution is the result of resolving an identifier to a session.
type Resolution struct {
	Outcome Outcome
	Session *Session // set when Outcome is Found
}

// DeleteResult is the result of deleting by identifier.
type DeleteResult struct {
	Outcome Outcome
	Count   int64
	Session *Session // the record removed by a positional delete
}

// Resolve maps a user-supplied identifier to at most one session.
// Precedence: a positive integer is a 1-based position in the
// most-recent-first listing; otherwise an exact ID match; otherwise any
// one session whose ID contains the identifier as a substring.
func (s *Store) Resolve(identifier string) (Resolution, error) {
	if idx, ok := parseIndex(identifier); ok {
		sessions, err := s.All()
		if err != nil {
			return Resolution{}, err
		}
		if idx > len(sessions) {
			return Resolution{Outcome: OutOfRange}, nil
		}
		return Resolution{Outcome: Found, Session: &sessions[idx-1]}, nil
	}

	sess, err := s.GetByID(identifier)
	if err != nil {
		return Resolution{}, err
	}
	if sess == nil {
		sess, err = s.FindByIDPattern(identifier)
		if err != nil {
			return Resolution{}, err
		}
	}
	if sess == nil {
		return Resolution{Outcome: NotFound}, nil
	}
	return Resolution{Outcome: Found, Session: sess}, nil
}

// DeleteByIdentifier deletes with the same precedence as Resolve. A
// positional identifier removes exactly the record at that position (by
// its ID). A non-positional identifier tries an exact-ID delete first,
// then falls back to removing every session whose ID contains it.
func (s *Store) DeleteByIdentifier(identifier string) (DeleteResult, error) {
	if idx, ok := parseIndex(identifier); ok {
		sessions, err := s.All()
		if err != nil {
			return DeleteResult{}, err
		}
		if idx > len(sessions) {
			return DeleteResult{Outcome: OutOfRange}, nil
		}
		target := sessions[idx-1]
		n, err := s.DeleteByID(target.ID)
		if err != nil {
			return DeleteResult{}, err
		}
		return DeleteResult{Outcome: Found, Count: n, Session: &target}, nil
	}

	n, err := s.DeleteByID(identifier)
	if err != nil {
		return DeleteResult{}, err
	}
	if n == 0 {
		n, err = s.DeleteByPattern(identifier)
		if err != nil {
			return DeleteResult{}, err
		}
	}
	if n == 0 {
		return DeleteResult{Outcome: NotFound}, nil
	}
	return DeleteResult{Outcome: Found, Count: n}, nil
}

// parseIndex reports whether identifier is a positive base-10 integer.
func parseIndex(identifier string) (int, bool) {
	n, err := strconv.Atoi(identifier)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
