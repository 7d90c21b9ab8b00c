package patch

import "fmt"

// RuleKind identifies how a payload is positioned inside a file.
type RuleKind int

const (
	// AfterLastImport inserts the payload as a new line after the last import statement.
	// Files without imports receive the payload as their first line.
	AfterLastImport RuleKind = iota
	// BeforeFirstOccurrenceOfPattern inserts the payload right after the first match of
	// Pattern, ahead of whatever followed the matched token (e.g. the first entry of
	// an array opened by "plugins: [").
	BeforeFirstOccurrenceOfPattern
	// AppendAtTop inserts the payload as the first line unconditionally.
	AppendAtTop
	// ReplaceFirstMatch replaces the first match of Pattern with the payload.
	ReplaceFirstMatch
)

// String returns the rule kind name.
func (k RuleKind) String() string {
	switch k {
	case AfterLastImport:
		return "AfterLastImport"
	case BeforeFirstOccurrenceOfPattern:
		return "BeforeFirstOccurrenceOfPattern"
	case AppendAtTop:
		return "AppendAtTop"
	case ReplaceFirstMatch:
		return "ReplaceFirstMatch"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Rule is an insertion rule. Pattern is a regular expression and is only
// meaningful for BeforeFirstOccurrenceOfPattern and ReplaceFirstMatch.
type Rule struct {
	Kind    RuleKind
	Pattern string
}

// String returns a readable form of the rule.
func (r Rule) String() string {
	if r.Pattern == "" {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Pattern)
}

// InsertAfterLastImport returns an AfterLastImport rule.
func InsertAfterLastImport() Rule {
	return Rule{Kind: AfterLastImport}
}

// InsertAtFirstOccurrence returns a BeforeFirstOccurrenceOfPattern rule.
func InsertAtFirstOccurrence(pattern string) Rule {
	return Rule{Kind: BeforeFirstOccurrenceOfPattern, Pattern: pattern}
}

// InsertAtTop returns an AppendAtTop rule.
func InsertAtTop() Rule {
	return Rule{Kind: AppendAtTop}
}

// Replace returns a ReplaceFirstMatch rule.
func Replace(pattern string) Rule {
	return Rule{Kind: ReplaceFirstMatch, Pattern: pattern}
}

// Descriptor describes one atomic text injection.
type Descriptor struct {
	// TargetFileCandidates are project-relative paths; the first existing one is patched.
	TargetFileCandidates []string
	// IdempotenceMarker is a literal whose presence means the patch is already applied.
	// Single, double and backtick quotes are interchangeable when matching.
	IdempotenceMarker string
	// Rule decides where Payload goes.
	Rule Rule
	// Payload is the text to insert.
	Payload string
}

// Result is the outcome of applying one Descriptor.
type Result int

const (
	// Applied means the text was changed.
	Applied Result = iota
	// AlreadyApplied means the idempotence marker was found and nothing changed.
	AlreadyApplied
	// AnchorNotFound means the rule's anchor does not exist in the text.
	AnchorNotFound
	// FileNotFound means none of the target candidates exist.
	FileNotFound
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case Applied:
		return "Applied"
	case AlreadyApplied:
		return "AlreadyApplied"
	case AnchorNotFound:
		return "AnchorNotFound"
	case FileNotFound:
		return "FileNotFound"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// Done reports whether the result leaves the file in the patched state.
func (r Result) Done() bool {
	return r == Applied || r == AlreadyApplied
}
