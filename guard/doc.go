// Package guard provides precondition checks for the entry points of public
// operations.
//
// Each guard takes a candidate value and the name of the parameter it came
// from. On success it returns the value unchanged with a nil error, so the
// check can sit at the assignment site. On failure it returns a *Error that
// names the parameter and the rule that was broken.
//
// # Design Philosophy
//
// Guards catch callers that break an operation's contract, not bad user input:
//
//   - A failed guard means the caller has a bug; there is nothing to retry
//   - Guards are pure: no logging, no shared state, no I/O
//   - Guards return errors; Must turns one into a panic where no caller exists
//
// Typical usage:
//
//	func NewPublisher(conn *Conn, topic string, partitions []int) (*Publisher, error) {
//	    conn, err := guard.RequireNonNull(conn, "conn")
//	    if err != nil {
//	        return nil, err
//	    }
//
//	    if _, err := guard.RequireNonEmptyText(topic, "topic"); err != nil {
//	        return nil, err
//	    }
//
//	    if _, err := guard.RequireNonEmptySequence(partitions, "partitions"); err != nil {
//	        return nil, err
//	    }
//	    // ...
//	}
//
// # Checks
//
//	RequireNonNull(value, name)                    nil, including typed nil
//	RequireNonEmptySequence(slice, name)           nil or zero-length slice
//	RequireNonEmptyMap(m, name)                    nil or zero-length map
//	RequireNonEmptyText(s, name)                   empty or whitespace-only text
//	RequireNonEmptyTextPtr(p, name)                nil pointer, then the text rule
//	NullOrNonEmptyText(p, name)                    exactly "" (nil and blanks pass)
//	RequireNoNullElements(slice, name)             nil slice or any nil element
//	RequireInRange(v, name, lower, upper)          outside [lower, upper]
//	RequireInRangeRef(&v, name, lower, upper)      same, returns the pointer
//	RequireInRangeComparable(v, name, lo, hi)      same, for types with Cmp
//	RequireValidRange(n, off, cnt, offN, cntN)     [off, off+cnt) not inside [0, n)
//	RequireValidSliceRange(s, off, cnt, offN, cntN) nil slice, then the range rule
//
// # Errors
//
// Every failure is a *Error carrying a Kind, the parameter name and a message.
// Each Kind unwraps to a sentinel:
//
//	KindNullArgument       ErrNullArgument
//	KindEmptyArgument      ErrEmptyArgument
//	KindInvalidArgument    ErrInvalidArgument
//	KindOutOfRangeArgument ErrOutOfRangeArgument
//
// Match with errors.Is, or extract the details with errors.As or KindOf:
//
//	if errors.Is(err, guard.ErrOutOfRangeArgument) {
//	    // ...
//	}
//
// # Parameter Names
//
// A guard about to fail first checks that the name it will cite is not blank.
// If it is, the returned error is a KindEmptyArgument for the parameter "name"
// instead. That inner check never validates its own label.
//
// # Telemetry
//
// Guards never emit telemetry. Wrap results with the report package to log,
// count and trace failures at the call site.
package guard
