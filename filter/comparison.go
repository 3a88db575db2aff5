package filter

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"unicode/utf8"
)

// Matcher tests a single, possibly NULL, field value.
type Matcher[V any] interface {
	Match(v *V) bool
	Validate() error
}

// Comparison is the comparison input for ordered scalars such as Int,
// Float and String. Every operator that is set must hold for a value to
// match.
//
// IsNull distinguishes "is: null" (true) from "isNot: null" (false). Value
// operators never match a NULL, following SQL three-valued logic.
type Comparison[V cmp.Ordered] struct {
	IsNull *bool `json:"isNull,omitempty"`
	Eq     *V    `json:"eq,omitempty"`
	Neq    *V    `json:"neq,omitempty"`
	Gt     *V    `json:"gt,omitempty"`
	Gte    *V    `json:"gte,omitempty"`
	Lt     *V    `json:"lt,omitempty"`
	Lte    *V    `json:"lte,omitempty"`
	In     []V   `json:"in,omitempty"`
	NotIn  []V   `json:"notIn,omitempty"`
}

// Match reports whether v satisfies the comparison. A nil v is NULL.
func (c Comparison[V]) Match(v *V) bool {
	if c.IsNull != nil && *c.IsNull != (v == nil) {
		return false
	}
	if v == nil {
		return !c.hasValueOps()
	}
	x := *v
	switch {
	case c.Eq != nil && x != *c.Eq:
		return false
	case c.Neq != nil && x == *c.Neq:
		return false
	case c.Gt != nil && x <= *c.Gt:
		return false
	case c.Gte != nil && x < *c.Gte:
		return false
	case c.Lt != nil && x >= *c.Lt:
		return false
	case c.Lte != nil && x > *c.Lte:
		return false
	case c.In != nil && !slices.Contains(c.In, x):
		return false
	case c.NotIn != nil && slices.Contains(c.NotIn, x):
		return false
	}
	return true
}

// Validate rejects combinations that can never be expressed in a query.
func (c Comparison[V]) Validate() error {
	var errs []error
	if c.IsNull != nil && *c.IsNull && c.hasValueOps() {
		errs = append(errs, errors.New("isNull cannot be combined with value operators"))
	}
	if c.In != nil && len(c.In) == 0 {
		errs = append(errs, errors.New("in must not be empty"))
	}
	if c.NotIn != nil && len(c.NotIn) == 0 {
		errs = append(errs, errors.New("notIn must not be empty"))
	}
	return errors.Join(errs...)
}

func (c Comparison[V]) hasValueOps() bool {
	return c.Eq != nil || c.Neq != nil || c.Gt != nil || c.Gte != nil ||
		c.Lt != nil || c.Lte != nil || c.In != nil || c.NotIn != nil
}

// StringComparison extends Comparison with SQL LIKE patterns, where %
// matches any run of characters and _ matches exactly one.
type StringComparison struct {
	Comparison[string]
	Like     *string `json:"like,omitempty"`
	NotLike  *string `json:"notLike,omitempty"`
	ILike    *string `json:"iLike,omitempty"`
	NotILike *string `json:"notILike,omitempty"`
}

// Match reports whether v satisfies the comparison. A nil v is NULL.
func (c StringComparison) Match(v *string) bool {
	if !c.Comparison.Match(v) {
		return false
	}
	if v == nil {
		return !c.hasPatterns()
	}
	switch {
	case c.Like != nil && !like(*v, *c.Like, false):
		return false
	case c.NotLike != nil && like(*v, *c.NotLike, false):
		return false
	case c.ILike != nil && !like(*v, *c.ILike, true):
		return false
	case c.NotILike != nil && like(*v, *c.NotILike, true):
		return false
	}
	return true
}

// Validate rejects combinations that can never be expressed in a query.
func (c StringComparison) Validate() error {
	err := c.Comparison.Validate()
	if c.IsNull != nil && *c.IsNull && c.hasPatterns() {
		err = errors.Join(err, errors.New("isNull cannot be combined with like patterns"))
	}
	return err
}

func (c StringComparison) hasPatterns() bool {
	return c.Like != nil || c.NotLike != nil || c.ILike != nil || c.NotILike != nil
}

// BoolComparison is the comparison input for Boolean fields.
// Is and IsNot compare against true or false; IsNull tests for NULL.
type BoolComparison struct {
	IsNull *bool `json:"isNull,omitempty"`
	Is     *bool `json:"is,omitempty"`
	IsNot  *bool `json:"isNot,omitempty"`
}

// Match reports whether v satisfies the comparison. A nil v is NULL.
func (c BoolComparison) Match(v *bool) bool {
	if c.IsNull != nil && *c.IsNull != (v == nil) {
		return false
	}
	if v == nil {
		return c.Is == nil && c.IsNot == nil
	}
	if c.Is != nil && *v != *c.Is {
		return false
	}
	if c.IsNot != nil && *v == *c.IsNot {
		return false
	}
	return true
}

// Validate rejects combinations that can never be expressed in a query.
func (c BoolComparison) Validate() error {
	if c.IsNull != nil && *c.IsNull && (c.Is != nil || c.IsNot != nil) {
		return errors.New("isNull cannot be combined with is or isNot")
	}
	return nil
}

// like matches s against a LIKE pattern. fold enables case-insensitive
// matching.
func like(s, pattern string, fold bool) bool {
	if fold {
		s, pattern = strings.ToLower(s), strings.ToLower(pattern)
	}
	// Greedy wildcard match with a single backtrack point for the last %.
	star, mark := -1, 0
	si, pi := 0, 0
	for si < len(s) {
		sr, ssize := utf8.DecodeRuneInString(s[si:])
		if pi < len(pattern) {
			pr, psize := utf8.DecodeRuneInString(pattern[pi:])
			switch {
			case pr == '%':
				star, mark = pi+psize, si
				pi += psize
				continue
			case pr == '_' || pr == sr:
				si += ssize
				pi += psize
				continue
			}
		}
		if star < 0 {
			return false
		}
		_, msize := utf8.DecodeRuneInString(s[mark:])
		mark += msize
		si, pi = mark, star
	}
	for pi < len(pattern) && pattern[pi] == '%' {
		pi++
	}
	return pi == len(pattern)
}
