package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Patterns shared by the field rule sets.
var (
	LettersAndSpaces = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)
	DigitsOnly       = regexp.MustCompile(`^\d+$`)
	PhoneChars       = regexp.MustCompile(`^[0-9+]*$`)
	EmailShape       = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

// RuleKind identifies the variant of a Rule.
type RuleKind int

const (
	KindRequired RuleKind = iota
	KindPattern
	KindMaxLength
	KindMax
)

func (k RuleKind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindPattern:
		return "pattern"
	case KindMaxLength:
		return "maxLength"
	case KindMax:
		return "max"
	}
	return "unknown"
}

// Rule is a declarative check on a single field value.
// Build rules with Required, Pattern, MaxLength, and Max.
type Rule struct {
	Kind    RuleKind
	Pattern *regexp.Regexp
	Limit   int
	Message string
}

// Required rejects values that are empty after trimming.
func Required(message string) Rule {
	return Rule{Kind: KindRequired, Message: message}
}

// Pattern rejects values that do not fully match re.
func Pattern(re *regexp.Regexp, message string) Rule {
	return Rule{Kind: KindPattern, Pattern: re, Message: message}
}

// MaxLength rejects values longer than n characters.
func MaxLength(n int, message string) Rule {
	return Rule{Kind: KindMaxLength, Limit: n, Message: message}
}

// Max rejects numeric values greater than n, including numbers too large to parse.
// Non-numeric values are left to Pattern.
func Max(n int, message string) Rule {
	return Rule{Kind: KindMax, Limit: n, Message: message}
}

// Violated reports whether value breaks the rule.
// Only Required applies to an empty value; the other kinds accept it.
func (r Rule) Violated(value string) bool {
	value = norm.NFC.String(value)
	if r.Kind == KindRequired {
		return strings.TrimSpace(value) == ""
	}
	if value == "" {
		return false
	}

	switch r.Kind {
	case KindPattern:
		return !r.Pattern.MatchString(value)
	case KindMaxLength:
		return utf8.RuneCountInString(value) > r.Limit
	case KindMax:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			// Out-of-range numbers are too large; anything else is left to Pattern.
			var numErr *strconv.NumError
			return errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)
		}
		return n > r.Limit
	}
	return false
}

// Check evaluates rules in order and returns one message per violated rule.
func Check(value string, rules []Rule) []string {
	var messages []string
	for _, rule := range rules {
		if rule.Violated(value) {
			messages = append(messages, rule.Message)
		}
	}
	return messages
}
